package availability

import (
	"testing"
	"time"

	"clearslot/models"
)

func parseTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}

func interval(t *testing.T, start, end string) models.BusyInterval {
	t.Helper()
	return models.BusyInterval{Start: parseTime(t, start), End: parseTime(t, end)}
}

func TestMergeBusyIntervals_Empty(t *testing.T) {
	if got := MergeBusyIntervals(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := MergeBusyIntervals([]models.BusyInterval{}); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMergeBusyIntervals_OverlapAndTouch(t *testing.T) {
	input := []models.BusyInterval{
		interval(t, "2025-06-16T13:00:00Z", "2025-06-16T14:00:00Z"),
		interval(t, "2025-06-16T10:00:00Z", "2025-06-16T11:30:00Z"),
		interval(t, "2025-06-16T11:00:00Z", "2025-06-16T12:00:00Z"),
		// Touches the previous block: back-to-back busy is one block.
		interval(t, "2025-06-16T12:00:00Z", "2025-06-16T12:30:00Z"),
	}

	got := MergeBusyIntervals(input)
	if len(got) != 2 {
		t.Fatalf("expected 2 merged intervals, got %d: %v", len(got), got)
	}
	if !got[0].Start.Equal(parseTime(t, "2025-06-16T10:00:00Z")) ||
		!got[0].End.Equal(parseTime(t, "2025-06-16T12:30:00Z")) {
		t.Errorf("first merged interval wrong: %v", got[0])
	}
	if !got[1].Start.Equal(parseTime(t, "2025-06-16T13:00:00Z")) ||
		!got[1].End.Equal(parseTime(t, "2025-06-16T14:00:00Z")) {
		t.Errorf("second merged interval wrong: %v", got[1])
	}
}

func TestMergeBusyIntervals_Idempotent(t *testing.T) {
	input := []models.BusyInterval{
		interval(t, "2025-06-16T09:00:00Z", "2025-06-16T10:00:00Z"),
		interval(t, "2025-06-16T09:30:00Z", "2025-06-16T11:00:00Z"),
		interval(t, "2025-06-16T15:00:00Z", "2025-06-16T16:00:00Z"),
	}

	once := MergeBusyIntervals(input)
	twice := MergeBusyIntervals(once)

	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %v vs %v", once, twice)
	}
	for i := range once {
		if !once[i].Start.Equal(twice[i].Start) || !once[i].End.Equal(twice[i].End) {
			t.Errorf("interval %d changed on re-merge: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestMergeBusyIntervals_DropsZeroLength(t *testing.T) {
	input := []models.BusyInterval{
		interval(t, "2025-06-16T09:00:00Z", "2025-06-16T09:00:00Z"),
		interval(t, "2025-06-16T11:00:00Z", "2025-06-16T10:00:00Z"), // inverted
		interval(t, "2025-06-16T12:00:00Z", "2025-06-16T13:00:00Z"),
	}

	got := MergeBusyIntervals(input)
	if len(got) != 1 {
		t.Fatalf("expected 1 interval after dropping degenerates, got %d: %v", len(got), got)
	}
}

func TestMergeBusyIntervals_DuplicatesAcrossCalendars(t *testing.T) {
	// The same meeting appearing on two calendars must not double up.
	input := []models.BusyInterval{
		interval(t, "2025-06-16T10:00:00Z", "2025-06-16T11:00:00Z"),
		interval(t, "2025-06-16T10:00:00Z", "2025-06-16T11:00:00Z"),
	}

	got := MergeBusyIntervals(input)
	if len(got) != 1 {
		t.Fatalf("expected duplicates collapsed to 1 interval, got %d", len(got))
	}
}
