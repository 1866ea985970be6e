package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/models"
	"fieldops/internal/repo"
)

// TimeEntryService manages work timers and hour totals.
type TimeEntryService struct {
	store repo.Store
}

// Start opens a new time entry for a technician on a job and returns it.
func (s *TimeEntryService) Start(ctx context.Context, technicianID, jobID string, notes *string) (models.TimeEntry, error) {
	if _, err := s.store.Technicians.Get(ctx, technicianID); err != nil {
		return models.TimeEntry{}, err
	}
	if _, err := s.store.Jobs.Get(ctx, jobID); err != nil {
		return models.TimeEntry{}, err
	}
	e := models.TimeEntry{
		ID:           uuid.NewString(),
		TechnicianID: technicianID,
		JobID:        jobID,
		StartTime:    time.Now().UTC(),
	}
	if notes != nil {
		e.Notes = *notes
	}
	return s.store.TimeEntries.Create(ctx, e)
}

// End closes an entry exactly once; a second end fails with
// models.ErrTimeEntryClosed. Nil breakMinutes/notes leave the stored fields
// untouched.
func (s *TimeEntryService) End(ctx context.Context, id string, breakMinutes *int, notes *string) (models.TimeEntry, error) {
	return s.store.TimeEntries.End(ctx, id, time.Now().UTC(), breakMinutes, notes)
}

func (s *TimeEntryService) FindOne(ctx context.Context, id string) (models.TimeEntry, error) {
	return s.store.TimeEntries.Get(ctx, id)
}

// FindByTechnician lists a technician's entries ordered by start time
// descending, optionally scoped to one day.
func (s *TimeEntryService) FindByTechnician(ctx context.Context, technicianID string, date *string) ([]models.TimeEntry, error) {
	var from, to *time.Time
	if date != nil && *date != "" {
		f, t, err := dayRange(date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		from, to = &f, &t
	}
	return s.store.TimeEntries.ListByTechnician(ctx, technicianID, from, to)
}

// FindByJob lists a job's full entry history ordered by start time ascending.
func (s *TimeEntryService) FindByJob(ctx context.Context, jobID string) ([]models.TimeEntry, error) {
	return s.store.TimeEntries.ListByJob(ctx, jobID)
}

// GetTotalHours sums worked hours over closed entries starting in
// [start, end): (end - start) minus break minutes, in hours. Open entries do
// not count.
func (s *TimeEntryService) GetTotalHours(ctx context.Context, technicianID string, start, end time.Time) (float64, error) {
	entries, err := s.store.TimeEntries.ListClosedInRange(ctx, technicianID, start, end)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		if e.EndTime == nil {
			continue
		}
		worked := e.EndTime.Sub(e.StartTime).Hours()
		if e.BreakMinutes != nil {
			worked -= float64(*e.BreakMinutes) / 60
		}
		total += worked
	}
	return total, nil
}
