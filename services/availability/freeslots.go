package availability

import (
	"clearslot/models"
)

// subtractBusy walks one working window left to right against the merged busy
// set, emitting a free slot for every uncovered gap. Busy intervals are
// clipped to the window bounds first; intervals entirely outside the window
// are ignored.
func subtractBusy(window models.WorkingWindow, busy []models.BusyInterval) []models.FreeSlot {
	var slots []models.FreeSlot
	cursor := window.Start

	for _, b := range busy {
		if !b.End.After(window.Start) {
			continue
		}
		if !b.Start.Before(window.End) {
			break
		}

		clipStart := b.Start
		if clipStart.Before(window.Start) {
			clipStart = window.Start
		}
		clipEnd := b.End
		if clipEnd.After(window.End) {
			clipEnd = window.End
		}

		if cursor.Before(clipStart) {
			slots = append(slots, models.FreeSlot{Start: cursor, End: clipStart})
		}
		if clipEnd.After(cursor) {
			cursor = clipEnd
		}
	}

	if cursor.Before(window.End) {
		slots = append(slots, models.FreeSlot{Start: cursor, End: window.End})
	}
	return slots
}

// CalculateResult subtracts merged busy intervals from each working window and
// aggregates free slots, per-day hours and the availability verdict.
//
// Every window contributes an hoursPerDay entry, including fully-busy days
// (value 0). An empty window list yields the canonical "nothing to offer"
// result: unavailable, zero hours, zero working days.
func CalculateResult(windows []models.WorkingWindow, busy []models.BusyInterval,
	minHoursPerDay, requiredHours float64, policy models.AvailabilityPolicy) models.AvailabilityResult {

	result := models.AvailabilityResult{
		FreeSlots:   []models.FreeSlot{},
		HoursPerDay: make(map[string]float64, len(windows)),
		WorkingDays: len(windows),
	}

	for _, w := range windows {
		dayHours := 0.0
		for _, slot := range subtractBusy(w, busy) {
			result.FreeSlots = append(result.FreeSlots, slot)
			dayHours += slot.End.Sub(slot.Start).Hours()
		}
		result.HoursPerDay[w.Date] = dayHours
		result.TotalFreeHours += dayHours
	}

	result.IsAvailable = evaluatePolicy(result, minHoursPerDay, requiredHours, policy)
	return result
}

// evaluatePolicy applies the named availability rule. See DefaultPolicy for
// how an unset policy resolves.
func evaluatePolicy(result models.AvailabilityResult, minHoursPerDay, requiredHours float64,
	policy models.AvailabilityPolicy) bool {

	if result.WorkingDays == 0 {
		return false
	}

	switch policy {
	case models.PolicyTotal:
		return result.TotalFreeHours >= requiredHours
	case models.PolicyEveryDay:
		// A zero bar still demands some free time on each day, so a
		// fully booked person is never reported available.
		for _, h := range result.HoursPerDay {
			if h < minHoursPerDay || h == 0 {
				return false
			}
		}
		return true
	case models.PolicyAnyDay:
		for _, h := range result.HoursPerDay {
			if h >= minHoursPerDay && h > 0 {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// DefaultPolicy resolves the effective policy for a request: an explicit
// policy wins; otherwise a positive requiredHours selects the aggregate-total
// rule and the per-day bar falls back to the any-day rule.
func DefaultPolicy(policy models.AvailabilityPolicy, requiredHours float64) models.AvailabilityPolicy {
	if policy != "" {
		return policy
	}
	if requiredHours > 0 {
		return models.PolicyTotal
	}
	return models.PolicyAnyDay
}

// ValidPolicy reports whether the given policy name is recognized. The empty
// string is valid and means "use the default".
func ValidPolicy(policy models.AvailabilityPolicy) bool {
	switch policy {
	case "", models.PolicyTotal, models.PolicyEveryDay, models.PolicyAnyDay:
		return true
	}
	return false
}
