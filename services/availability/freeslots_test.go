package availability

import (
	"math"
	"testing"
	"time"

	"clearslot/models"
)

func mustWindows(t *testing.T, start, end string, prefs models.Preferences) []models.WorkingWindow {
	t.Helper()
	windows, err := BuildWorkingWindows(start, end, prefs)
	if err != nil {
		t.Fatalf("BuildWorkingWindows: %v", err)
	}
	return windows
}

func TestCalculateResult_SingleBusyBlock(t *testing.T) {
	// One Monday 09:00-17:00 UTC with a 10:00-11:00 meeting.
	windows := mustWindows(t, "2025-06-16", "2025-06-16", utcPrefs())
	busy := MergeBusyIntervals([]models.BusyInterval{
		interval(t, "2025-06-16T10:00:00Z", "2025-06-16T11:00:00Z"),
	})

	result := CalculateResult(windows, busy, 1, 0, models.PolicyAnyDay)

	if len(result.FreeSlots) != 2 {
		t.Fatalf("expected 2 free slots, got %d: %v", len(result.FreeSlots), result.FreeSlots)
	}
	if !result.FreeSlots[0].Start.Equal(parseTime(t, "2025-06-16T09:00:00Z")) ||
		!result.FreeSlots[0].End.Equal(parseTime(t, "2025-06-16T10:00:00Z")) {
		t.Errorf("first slot wrong: %v", result.FreeSlots[0])
	}
	if !result.FreeSlots[1].Start.Equal(parseTime(t, "2025-06-16T11:00:00Z")) ||
		!result.FreeSlots[1].End.Equal(parseTime(t, "2025-06-16T17:00:00Z")) {
		t.Errorf("second slot wrong: %v", result.FreeSlots[1])
	}
	if result.TotalFreeHours != 7 {
		t.Errorf("totalFreeHours = %v, want 7", result.TotalFreeHours)
	}
	if result.WorkingDays != 1 {
		t.Errorf("workingDays = %d, want 1", result.WorkingDays)
	}
	if result.HoursPerDay["2025-06-16"] != 7 {
		t.Errorf("hoursPerDay = %v, want 7 for 2025-06-16", result.HoursPerDay)
	}
	if !result.IsAvailable {
		t.Error("expected available")
	}
}

func TestCalculateResult_FullyCoveredDay(t *testing.T) {
	// Busy 08:00-18:00 swallows the whole 09:00-17:00 window.
	windows := mustWindows(t, "2025-06-16", "2025-06-16", utcPrefs())
	busy := MergeBusyIntervals([]models.BusyInterval{
		interval(t, "2025-06-16T08:00:00Z", "2025-06-16T18:00:00Z"),
	})

	result := CalculateResult(windows, busy, 1, 0, models.PolicyAnyDay)

	if len(result.FreeSlots) != 0 {
		t.Errorf("expected no free slots, got %v", result.FreeSlots)
	}
	hours, present := result.HoursPerDay["2025-06-16"]
	if !present {
		t.Fatal("fully busy day must still appear in hoursPerDay")
	}
	if hours != 0 {
		t.Errorf("hoursPerDay = %v, want 0", hours)
	}
	if result.IsAvailable {
		t.Error("expected unavailable")
	}
}

func TestCalculateResult_WeekendAbsent(t *testing.T) {
	// Saturday and Sunday produce no windows and no hoursPerDay entries.
	windows := mustWindows(t, "2025-06-14", "2025-06-16", utcPrefs())

	result := CalculateResult(windows, nil, 1, 0, models.PolicyAnyDay)

	if result.WorkingDays != 1 {
		t.Fatalf("workingDays = %d, want 1", result.WorkingDays)
	}
	for _, date := range []string{"2025-06-14", "2025-06-15"} {
		if _, present := result.HoursPerDay[date]; present {
			t.Errorf("off day %s must be absent from hoursPerDay", date)
		}
	}
	if _, present := result.HoursPerDay["2025-06-16"]; !present {
		t.Error("working day 2025-06-16 missing from hoursPerDay")
	}
}

func TestCalculateResult_AllDaysOff(t *testing.T) {
	result := CalculateResult(nil, nil, 1, 0, models.PolicyAnyDay)
	if result.IsAvailable || result.TotalFreeHours != 0 || result.WorkingDays != 0 {
		t.Errorf("empty window list must yield unavailable zero result, got %+v", result)
	}
}

func TestCalculateResult_FreeBusyPartition(t *testing.T) {
	// Free slots plus clipped busy time must exactly cover each window.
	windows := mustWindows(t, "2025-06-16", "2025-06-20", utcPrefs())
	busy := MergeBusyIntervals([]models.BusyInterval{
		interval(t, "2025-06-16T08:30:00Z", "2025-06-16T09:45:00Z"), // clipped at window start
		interval(t, "2025-06-16T12:00:00Z", "2025-06-16T12:30:00Z"),
		interval(t, "2025-06-17T16:15:00Z", "2025-06-17T19:00:00Z"), // clipped at window end
		interval(t, "2025-06-18T00:00:00Z", "2025-06-19T00:00:00Z"), // whole day
	})

	result := CalculateResult(windows, busy, 0, 0, models.PolicyAnyDay)

	for _, w := range windows {
		var clippedBusy time.Duration
		for _, b := range busy {
			s, e := b.Start, b.End
			if s.Before(w.Start) {
				s = w.Start
			}
			if e.After(w.End) {
				e = w.End
			}
			if e.After(s) {
				clippedBusy += e.Sub(s)
			}
		}
		free := time.Duration(result.HoursPerDay[w.Date] * float64(time.Hour))
		if diff := (free + clippedBusy) - w.End.Sub(w.Start); diff < -time.Second || diff > time.Second {
			t.Errorf("window %s: free %v + busy %v != span %v", w.Date, free, clippedBusy, w.End.Sub(w.Start))
		}
	}

	maxTotal := float64(result.WorkingDays) * 8
	if result.TotalFreeHours < 0 || result.TotalFreeHours > maxTotal+1e-9 {
		t.Errorf("totalFreeHours %v out of [0, %v]", result.TotalFreeHours, maxTotal)
	}
}

func TestEvaluatePolicy_Rules(t *testing.T) {
	windows := mustWindows(t, "2025-06-16", "2025-06-17", utcPrefs())
	busy := MergeBusyIntervals([]models.BusyInterval{
		// Monday mostly busy: one free hour left. Tuesday untouched.
		interval(t, "2025-06-16T09:00:00Z", "2025-06-16T16:00:00Z"),
	})

	cases := []struct {
		name           string
		policy         models.AvailabilityPolicy
		minHoursPerDay float64
		requiredHours  float64
		want           bool
	}{
		{"total met", models.PolicyTotal, 0, 9, true},
		{"total unmet", models.PolicyTotal, 0, 10, false},
		{"every-day unmet", models.PolicyEveryDay, 2, 0, false},
		{"every-day met", models.PolicyEveryDay, 1, 0, true},
		{"any-day met", models.PolicyAnyDay, 8, 0, true},
		{"any-day unmet", models.PolicyAnyDay, 9, 0, false},
	}

	for _, tc := range cases {
		result := CalculateResult(windows, busy, tc.minHoursPerDay, tc.requiredHours, tc.policy)
		if math.Abs(result.TotalFreeHours-9) > 1e-9 {
			t.Fatalf("%s: totalFreeHours = %v, want 9", tc.name, result.TotalFreeHours)
		}
		if result.IsAvailable != tc.want {
			t.Errorf("%s: isAvailable = %v, want %v", tc.name, result.IsAvailable, tc.want)
		}
	}
}

func TestEvaluatePolicy_FullyBookedNeverAvailable(t *testing.T) {
	// Both per-day rules demand some free time even with a zero bar.
	windows := mustWindows(t, "2025-06-16", "2025-06-16", utcPrefs())
	busy := MergeBusyIntervals([]models.BusyInterval{
		interval(t, "2025-06-16T09:00:00Z", "2025-06-16T17:00:00Z"),
	})

	for _, policy := range []models.AvailabilityPolicy{models.PolicyEveryDay, models.PolicyAnyDay} {
		result := CalculateResult(windows, busy, 0, 0, policy)
		if result.IsAvailable {
			t.Errorf("%s: fully booked day reported available", policy)
		}
	}
}

func TestDefaultPolicy(t *testing.T) {
	if got := DefaultPolicy("", 0); got != models.PolicyAnyDay {
		t.Errorf("no requiredHours: got %q, want any-day", got)
	}
	if got := DefaultPolicy("", 12); got != models.PolicyTotal {
		t.Errorf("requiredHours set: got %q, want total", got)
	}
	if got := DefaultPolicy(models.PolicyEveryDay, 12); got != models.PolicyEveryDay {
		t.Errorf("explicit policy must win, got %q", got)
	}
}
