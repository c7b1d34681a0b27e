package models

import "time"

// BusyInterval is a span of absolute (UTC) time during which a person is
// unavailable according to some calendar. Start must precede End.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Preferences holds a person's working-hours configuration.
// Times of day are minutes from midnight in the person's zone
// (e.g., 540 for 9:00 AM), matching the slot convention used elsewhere.
type Preferences struct {
	Timezone     string `bson:"timezone" json:"timezone"`         // IANA zone id, e.g. "Europe/Berlin"
	WorkStartMin int    `bson:"workStartMin" json:"workStartMin"` // minutes from midnight
	WorkEndMin   int    `bson:"workEndMin" json:"workEndMin"`     // minutes from midnight; must exceed WorkStartMin
	OffDays      []int  `bson:"offDays" json:"offDays"`           // weekday numbers, 0 = Sunday .. 6 = Saturday
}

// IsOffDay reports whether the given weekday is configured off.
func (p Preferences) IsOffDay(wd time.Weekday) bool {
	for _, d := range p.OffDays {
		if time.Weekday(d) == wd {
			return true
		}
	}
	return false
}

// AvailabilityPolicy names the rule that turns per-day free hours into an
// overall availability verdict.
type AvailabilityPolicy string

const (
	// PolicyTotal: available when total free hours meet RequiredHours.
	PolicyTotal AvailabilityPolicy = "total"
	// PolicyEveryDay: available when every working day clears MinHoursPerDay.
	PolicyEveryDay AvailabilityPolicy = "every-day"
	// PolicyAnyDay: available when at least one working day clears MinHoursPerDay.
	PolicyAnyDay AvailabilityPolicy = "any-day"
)

// AvailabilityRequest describes one availability computation.
// StartDate/EndDate are inclusive calendar dates ("2006-01-02"); when both are
// empty the service scans tomorrow through tomorrow+N-1 in the person's zone.
type AvailabilityRequest struct {
	PersonID       string             `json:"personId" binding:"required"`
	CalendarIDs    []string           `json:"calendarIds" binding:"required"`
	StartDate      string             `json:"startDate,omitempty"`
	EndDate        string             `json:"endDate,omitempty"`
	Preferences    *Preferences       `json:"preferences,omitempty"` // nil means load from the person record
	MinHoursPerDay float64            `json:"minHoursPerDay"`
	RequiredHours  float64            `json:"requiredHours,omitempty"`
	Policy         AvailabilityPolicy `json:"policy,omitempty"`
}

// WorkingWindow is the absolute-time span of one calendar date's working hours.
type WorkingWindow struct {
	Date  string    `json:"date"` // "2006-01-02" in the person's zone
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FreeSlot is a maximal sub-interval of a working window not covered by any
// busy interval.
type FreeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityResult is the outcome of one computation. It is derived fresh on
// every request and never cached.
type AvailabilityResult struct {
	IsAvailable    bool               `json:"isAvailable"`
	FreeSlots      []FreeSlot         `json:"freeSlots"`
	TotalFreeHours float64            `json:"totalFreeHours"`
	WorkingDays    int                `json:"workingDays"`
	HoursPerDay    map[string]float64 `json:"hoursPerDay"`
}

// BatchAvailabilityRequest computes availability for several people over the
// same range and engagement bar.
type BatchAvailabilityRequest struct {
	PersonIDs      []string           `json:"personIds" binding:"required"`
	CalendarIDs    []string           `json:"calendarIds,omitempty"` // empty means each person's primary calendar
	StartDate      string             `json:"startDate,omitempty"`
	EndDate        string             `json:"endDate,omitempty"`
	MinHoursPerDay float64            `json:"minHoursPerDay"`
	RequiredHours  float64            `json:"requiredHours,omitempty"`
	Policy         AvailabilityPolicy `json:"policy,omitempty"`
}

// BatchAvailabilityEntry is one person's outcome within a batch computation.
type BatchAvailabilityEntry struct {
	PersonID string              `json:"personId"`
	Result   *AvailabilityResult `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
	Kind     string              `json:"kind,omitempty"` // error kind when Error is set
}
