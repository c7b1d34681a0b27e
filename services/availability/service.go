package availability

import (
	"context"
	"errors"
	"sync"
	"time"

	personRepo "clearslot/database/repository/person"
	"clearslot/models"
	"clearslot/utils"

	"go.uber.org/zap"
)

// AvailabilityService defines the inbound computation surface: one request in,
// one result or typed error out. Nothing is cached between calls.
type AvailabilityService interface {
	ComputeAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResult, error)
	ComputeBatch(ctx context.Context, req models.BatchAvailabilityRequest) ([]models.BatchAvailabilityEntry, error)
}

// DefaultAvailabilityService is the concrete implementation.
type DefaultAvailabilityService struct {
	Persons  personRepo.PersonRepository
	Fetcher  *Fetcher
	ScanDays int // default range length when the request has no dates
	Fanout   int // concurrent person computations in a batch

	// Now is the clock used by the default-window resolver; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validateRequest(req models.AvailabilityRequest) error {
	if req.PersonID == "" {
		return NewError(KindValidation, "personId is required")
	}
	if len(req.CalendarIDs) == 0 {
		return NewError(KindValidation, "at least one calendar id is required")
	}
	if req.MinHoursPerDay < 0 {
		return NewError(KindValidation, "minHoursPerDay must not be negative")
	}
	if req.RequiredHours < 0 {
		return NewError(KindValidation, "requiredHours must not be negative")
	}
	if !ValidPolicy(req.Policy) {
		return NewError(KindValidation, "unknown availability policy %q", req.Policy)
	}
	if req.Policy == models.PolicyTotal && req.RequiredHours <= 0 {
		return NewError(KindValidation, "policy %q needs a positive requiredHours", req.Policy)
	}
	if (req.StartDate == "") != (req.EndDate == "") {
		return NewError(KindValidation, "startDate and endDate must be supplied together")
	}
	if req.Preferences != nil {
		if req.Preferences.WorkStartMin >= req.Preferences.WorkEndMin {
			return NewError(KindValidation, "working hours start must precede end")
		}
	}
	return nil
}

// ComputeAvailability runs the full pipeline for one person: resolve
// preferences and date range, fetch busy intervals through the refreshing
// fetcher, merge, build working windows, subtract, and evaluate the policy.
func (s *DefaultAvailabilityService) ComputeAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	prefs := req.Preferences
	if prefs == nil {
		person, err := s.Persons.GetByID(ctx, req.PersonID)
		if err != nil {
			if errors.Is(err, personRepo.ErrNotFound) {
				return nil, NewError(KindValidation, "unknown person %s", req.PersonID)
			}
			return nil, WrapError(KindUnreachable, err, "failed to load person %s", req.PersonID)
		}
		prefs = &person.Preferences
		if prefs.WorkStartMin >= prefs.WorkEndMin {
			return nil, NewError(KindValidation, "person %s has inverted working hours", req.PersonID)
		}
	}

	startDate, endDate := req.StartDate, req.EndDate
	if startDate == "" {
		var err error
		startDate, endDate, err = DefaultScanRange(s.now(), prefs.Timezone, s.ScanDays)
		if err != nil {
			return nil, err
		}
	}

	windows, err := BuildWorkingWindows(startDate, endDate, *prefs)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		// Every date in range is an off day; no upstream call needed.
		result := CalculateResult(nil, nil, req.MinHoursPerDay, req.RequiredHours,
			DefaultPolicy(req.Policy, req.RequiredHours))
		return &result, nil
	}

	// Fetch across the whole span of generated windows in one upstream call.
	timeMin := windows[0].Start
	timeMax := windows[len(windows)-1].End

	raw, err := s.Fetcher.FetchBusy(ctx, req.PersonID, req.CalendarIDs, timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	busy := MergeBusyIntervals(raw)
	result := CalculateResult(windows, busy, req.MinHoursPerDay, req.RequiredHours,
		DefaultPolicy(req.Policy, req.RequiredHours))

	logger.Debug("Computed availability",
		zap.String("personId", req.PersonID),
		zap.String("range", startDate+".."+endDate),
		zap.Int("workingDays", result.WorkingDays),
		zap.Float64("totalFreeHours", result.TotalFreeHours),
		zap.Bool("isAvailable", result.IsAvailable))

	return &result, nil
}

// ComputeBatch computes availability for several people concurrently.
// Computations are independent; a failure for one person never aborts the
// others, it lands as a typed entry in that person's slot.
func (s *DefaultAvailabilityService) ComputeBatch(ctx context.Context, req models.BatchAvailabilityRequest) ([]models.BatchAvailabilityEntry, error) {
	if len(req.PersonIDs) == 0 {
		return nil, NewError(KindValidation, "at least one person id is required")
	}

	fanout := s.Fanout
	if fanout < 1 {
		fanout = 1
	}

	entries := make([]models.BatchAvailabilityEntry, len(req.PersonIDs))
	sem := make(chan struct{}, fanout)
	var wg sync.WaitGroup

	for i, personID := range req.PersonIDs {
		wg.Add(1)
		go func(i int, personID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			calendarIDs := req.CalendarIDs
			if len(calendarIDs) == 0 {
				person, err := s.Persons.GetByID(ctx, personID)
				if err != nil || person.PrimaryCalendarID == "" {
					entries[i] = models.BatchAvailabilityEntry{
						PersonID: personID,
						Error:    "no calendar known for person",
						Kind:     string(KindValidation),
					}
					return
				}
				calendarIDs = []string{person.PrimaryCalendarID}
			}

			result, err := s.ComputeAvailability(ctx, models.AvailabilityRequest{
				PersonID:       personID,
				CalendarIDs:    calendarIDs,
				StartDate:      req.StartDate,
				EndDate:        req.EndDate,
				MinHoursPerDay: req.MinHoursPerDay,
				RequiredHours:  req.RequiredHours,
				Policy:         req.Policy,
			})
			if err != nil {
				entries[i] = models.BatchAvailabilityEntry{
					PersonID: personID,
					Error:    err.Error(),
					Kind:     string(KindOf(err)),
				}
				return
			}
			entries[i] = models.BatchAvailabilityEntry{PersonID: personID, Result: result}
		}(i, personID)
	}

	wg.Wait()
	return entries, nil
}
