package availability

import (
	"fmt"
	"time"

	"clearslot/models"
)

const dateLayout = "2006-01-02"

// BuildWorkingWindows produces one working-hours window per calendar date in
// [startDate, endDate] whose weekday is not configured off.
//
// Each window's bounds are built as wall-clock times in the preference zone
// for that specific date, so two dates straddling a DST transition get
// different absolute spans for the same nominal local hours.
func BuildWorkingWindows(startDate, endDate string, prefs models.Preferences) ([]models.WorkingWindow, error) {
	loc, err := time.LoadLocation(prefs.Timezone)
	if err != nil {
		return nil, NewError(KindValidation, "unknown timezone %q", prefs.Timezone)
	}

	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return nil, NewError(KindValidation, "invalid startDate %q", startDate)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return nil, NewError(KindValidation, "invalid endDate %q", endDate)
	}
	if end.Before(start) {
		return nil, NewError(KindValidation, "endDate %s precedes startDate %s", endDate, startDate)
	}

	var windows []models.WorkingWindow
	days := int(end.Sub(start).Hours()/24) + 1
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		y, m, d := date.Date()

		// Weekday is a property of the civil date; noon avoids any
		// midnight DST ambiguity.
		wd := time.Date(y, m, d, 12, 0, 0, 0, loc).Weekday()
		if prefs.IsOffDay(wd) {
			continue
		}

		ws := time.Date(y, m, d, 0, prefs.WorkStartMin, 0, 0, loc)
		we := time.Date(y, m, d, 0, prefs.WorkEndMin, 0, 0, loc)
		if !ws.Before(we) {
			// Inverted or empty local window; the preference invariant
			// forbids this, skip rather than emit garbage.
			continue
		}

		windows = append(windows, models.WorkingWindow{
			Date:  fmt.Sprintf("%04d-%02d-%02d", y, int(m), d),
			Start: ws,
			End:   we,
		})
	}
	return windows, nil
}

// DefaultScanRange computes the fallback date range when a request carries
// none: tomorrow through tomorrow+days-1, both as calendar dates in the
// person's zone. "Tomorrow" is evaluated against now converted into that
// zone, never the server's local time.
func DefaultScanRange(now time.Time, timezone string, days int) (string, string, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", "", NewError(KindValidation, "unknown timezone %q", timezone)
	}
	if days < 1 {
		days = 1
	}
	tomorrow := now.In(loc).AddDate(0, 0, 1)
	last := tomorrow.AddDate(0, 0, days-1)
	return tomorrow.Format(dateLayout), last.Format(dateLayout), nil
}
