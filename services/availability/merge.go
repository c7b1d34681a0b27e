package availability

import (
	"sort"

	"clearslot/models"
)

// MergeBusyIntervals normalizes raw busy intervals (unsorted, possibly
// overlapping, possibly from several calendars) into a minimal sorted set of
// non-overlapping intervals covering the same union of time.
//
// Touching intervals (next.Start == current.End) are merged: back-to-back
// meetings read as one continuous busy block. Zero-length and inverted
// intervals are discarded.
func MergeBusyIntervals(intervals []models.BusyInterval) []models.BusyInterval {
	valid := make([]models.BusyInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start.Before(iv.End) {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Start.Before(valid[j].Start)
	})

	merged := []models.BusyInterval{valid[0]}
	for _, iv := range valid[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
