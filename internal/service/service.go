// Package service implements the domain operations shared by the REST and
// tool-call adapters. Services validate references and defaults; storage
// invariants (stamp-once, close-once, usage accumulation) live in the repo
// layer.
package service

import (
	"errors"
	"time"

	"fieldops/internal/repo"
)

// ErrInvalidDate reports an unparseable date filter.
var ErrInvalidDate = errors.New("invalid date")

// Services bundles the per-entity domain services over one store.
type Services struct {
	Technicians *TechnicianService
	Jobs        *JobService
	Assets      *AssetService
	TimeEntries *TimeEntryService
}

// New wires the domain services onto the given store.
func New(st repo.Store) Services {
	return Services{
		Technicians: &TechnicianService{store: st},
		Jobs:        &JobService{store: st},
		Assets:      &AssetService{store: st},
		TimeEntries: &TimeEntryService{store: st},
	}
}

// parseDay accepts a date as YYYY-MM-DD or RFC3339 and returns the UTC
// midnight of that day.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// dayRange returns [start of day, start of next day) for an optional date
// string, defaulting to today.
func dayRange(date *string) (time.Time, time.Time, error) {
	var day time.Time
	if date == nil || *date == "" {
		now := time.Now().UTC()
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		day, err = parseDay(*date)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return day, day.Add(24 * time.Hour), nil
}
