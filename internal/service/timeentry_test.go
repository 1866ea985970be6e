package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fieldops/internal/models"
	"fieldops/internal/repo"
)

func seededServices(t *testing.T) Services {
	t.Helper()
	st := repo.NewMemory().Store()
	if err := repo.Seed(context.Background(), st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return New(st)
}

func TestStartAndEndTimeEntry(t *testing.T) {
	svcs := seededServices(t)
	ctx := context.Background()

	entry, err := svcs.TimeEntries.Start(ctx, "tech001", "job001", nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if entry.ID == "" || entry.EndTime != nil {
		t.Fatalf("entry = %+v", entry)
	}

	breakMinutes := 10
	closed, err := svcs.TimeEntries.End(ctx, entry.ID, &breakMinutes, nil)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if closed.EndTime == nil || closed.BreakMinutes == nil || *closed.BreakMinutes != 10 {
		t.Fatalf("closed = %+v", closed)
	}

	// Close exactly once.
	if _, err := svcs.TimeEntries.End(ctx, entry.ID, nil, nil); !errors.Is(err, models.ErrTimeEntryClosed) {
		t.Fatalf("second end: error = %v, want ErrTimeEntryClosed", err)
	}
}

func TestStartRejectsUnknownReferences(t *testing.T) {
	svcs := seededServices(t)
	ctx := context.Background()

	if _, err := svcs.TimeEntries.Start(ctx, "tech999", "job001", nil); !errors.Is(err, models.ErrTechnicianNotFound) {
		t.Fatalf("error = %v", err)
	}
	if _, err := svcs.TimeEntries.Start(ctx, "tech001", "job999", nil); !errors.Is(err, models.ErrJobNotFound) {
		t.Fatalf("error = %v", err)
	}
}

func TestGetTotalHours(t *testing.T) {
	st := repo.NewMemory().Store()
	ctx := context.Background()
	svcs := New(st)

	base := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	end2h := base.Add(2 * time.Hour)
	end4h := base.Add(3 * time.Hour).Add(4 * time.Hour)
	break15 := 15
	break30 := 30

	entries := []models.TimeEntry{
		// 2h with a 15min break
		{ID: "t1", TechnicianID: "tech001", JobID: "job001", StartTime: base, EndTime: &end2h, BreakMinutes: &break15},
		// 4h with a 30min break
		{ID: "t2", TechnicianID: "tech001", JobID: "job001", StartTime: base.Add(3 * time.Hour), EndTime: &end4h, BreakMinutes: &break30},
		// open entry, excluded from totals
		{ID: "t3", TechnicianID: "tech001", JobID: "job001", StartTime: base.Add(8 * time.Hour)},
		// other technician, excluded
		{ID: "t4", TechnicianID: "tech002", JobID: "job001", StartTime: base, EndTime: &end2h},
	}
	for _, e := range entries {
		if _, err := st.TimeEntries.Create(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	total, err := svcs.TimeEntries.GetTotalHours(ctx, "tech001", base.Add(-time.Hour), base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("total hours: %v", err)
	}
	if math.Abs(total-5.25) > 1e-9 {
		t.Fatalf("total = %v, want 5.25", total)
	}
}

func TestFindByTechnicianDateScope(t *testing.T) {
	svcs := seededServices(t)
	ctx := context.Background()

	date := "2025-06-03"
	entries, err := svcs.TimeEntries.FindByTechnician(ctx, "tech001", &date)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "time001" {
		t.Fatalf("entries = %+v", entries)
	}

	other := "2025-06-04"
	entries, err = svcs.TimeEntries.FindByTechnician(ctx, "tech001", &other)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %+v, want none", entries)
	}

	bad := "someday"
	if _, err := svcs.TimeEntries.FindByTechnician(ctx, "tech001", &bad); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("error = %v, want ErrInvalidDate", err)
	}
}
