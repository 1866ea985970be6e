package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"fieldops/internal/models"
)

// Memory is an in-process store used for development and tests. All four
// repositories share one mutex so cross-entity operations see a consistent
// view.
type Memory struct {
	mu          sync.RWMutex
	technicians map[string]models.Technician
	jobs        map[string]models.Job
	assets      map[string]models.Asset
	timeEntries map[string]models.TimeEntry
	usages      map[usageKey]int
}

type usageKey struct {
	jobID   string
	assetID string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		technicians: make(map[string]models.Technician),
		jobs:        make(map[string]models.Job),
		assets:      make(map[string]models.Asset),
		timeEntries: make(map[string]models.TimeEntry),
		usages:      make(map[usageKey]int),
	}
}

// Store exposes the memory store as per-entity repositories.
func (m *Memory) Store() Store {
	return Store{
		Technicians: &memTechnicians{m},
		Jobs:        &memJobs{m},
		Assets:      &memAssets{m},
		TimeEntries: &memTimeEntries{m},
	}
}

// --- Technicians ---

type memTechnicians struct{ m *Memory }

func (r *memTechnicians) List(_ context.Context) ([]models.Technician, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]models.Technician, 0, len(r.m.technicians))
	for _, t := range r.m.technicians {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTechnicians) ListByStatus(_ context.Context, status models.TechnicianStatus) ([]models.Technician, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.Technician
	for _, t := range r.m.technicians {
		if t.Status == status {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTechnicians) Get(_ context.Context, id string) (models.Technician, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	t, ok := r.m.technicians[id]
	if !ok {
		return models.Technician{}, models.ErrTechnicianNotFound
	}
	return t, nil
}

func (r *memTechnicians) Create(_ context.Context, t models.Technician) (models.Technician, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.technicians[t.ID] = t
	return t, nil
}

func (r *memTechnicians) Update(_ context.Context, t models.Technician) (models.Technician, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.technicians[t.ID]; !ok {
		return models.Technician{}, models.ErrTechnicianNotFound
	}
	r.m.technicians[t.ID] = t
	return t, nil
}

func (r *memTechnicians) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.technicians[id]; !ok {
		return models.ErrTechnicianNotFound
	}
	delete(r.m.technicians, id)
	return nil
}

func (r *memTechnicians) SetStatus(_ context.Context, id string, status models.TechnicianStatus) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.technicians[id]
	if !ok {
		return models.ErrTechnicianNotFound
	}
	t.Status = status
	r.m.technicians[id] = t
	return nil
}

func (r *memTechnicians) SetLocation(_ context.Context, id string, loc models.Location) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.technicians[id]
	if !ok {
		return models.ErrTechnicianNotFound
	}
	t.Location = &loc
	r.m.technicians[id] = t
	return nil
}

// --- Jobs ---

type memJobs struct{ m *Memory }

// withUsages copies the job and attaches its accumulated asset usages.
// Callers must hold at least a read lock.
func (r *memJobs) withUsages(j models.Job) models.Job {
	var usages []models.AssetUsage
	for k, q := range r.m.usages {
		if k.jobID == j.ID {
			usages = append(usages, models.AssetUsage{JobID: k.jobID, AssetID: k.assetID, QuantityUsed: q})
		}
	}
	sort.Slice(usages, func(i, x int) bool { return usages[i].AssetID < usages[x].AssetID })
	j.AssetUsages = usages
	return j
}

func (r *memJobs) List(_ context.Context, f JobFilter) ([]models.Job, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.Job
	for _, j := range r.m.jobs {
		if f.TechnicianID != "" && j.AssignedTechnician != f.TechnicianID {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		out = append(out, r.withUsages(j))
	}
	sort.Slice(out, func(i, x int) bool { return out[i].ScheduledStart.Before(out[x].ScheduledStart) })
	return out, nil
}

func (r *memJobs) ListScheduled(_ context.Context, technicianID string, from, to time.Time) ([]models.Job, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.Job
	for _, j := range r.m.jobs {
		if j.AssignedTechnician != technicianID {
			continue
		}
		if j.ScheduledStart.Before(from) || !j.ScheduledStart.Before(to) {
			continue
		}
		out = append(out, r.withUsages(j))
	}
	sort.Slice(out, func(i, x int) bool { return out[i].ScheduledStart.Before(out[x].ScheduledStart) })
	return out, nil
}

func (r *memJobs) Get(_ context.Context, id string) (models.Job, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	j, ok := r.m.jobs[id]
	if !ok {
		return models.Job{}, models.ErrJobNotFound
	}
	return r.withUsages(j), nil
}

func (r *memJobs) Create(_ context.Context, j models.Job) (models.Job, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.jobs[j.ID] = j
	return r.withUsages(j), nil
}

func (r *memJobs) Update(_ context.Context, j models.Job) (models.Job, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.jobs[j.ID]; !ok {
		return models.Job{}, models.ErrJobNotFound
	}
	r.m.jobs[j.ID] = j
	return r.withUsages(j), nil
}

func (r *memJobs) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.jobs[id]; !ok {
		return models.ErrJobNotFound
	}
	delete(r.m.jobs, id)
	for k := range r.m.usages {
		if k.jobID == id {
			delete(r.m.usages, k)
		}
	}
	return nil
}

// SetStatus stamps actualStart on the first in_progress transition and
// actualEnd on the first completed transition; repeats keep the first stamp.
func (r *memJobs) SetStatus(_ context.Context, id string, status models.JobStatus, now time.Time) (models.Job, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	j, ok := r.m.jobs[id]
	if !ok {
		return models.Job{}, models.ErrJobNotFound
	}
	j.Status = status
	switch status {
	case models.JobInProgress:
		if j.ActualStart == nil {
			t := now
			j.ActualStart = &t
		}
	case models.JobCompleted:
		if j.ActualEnd == nil {
			t := now
			j.ActualEnd = &t
		}
	}
	r.m.jobs[id] = j
	return r.withUsages(j), nil
}

func (r *memJobs) SetWorkNotes(_ context.Context, id, notes string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	j, ok := r.m.jobs[id]
	if !ok {
		return models.ErrJobNotFound
	}
	j.WorkNotes = notes
	r.m.jobs[id] = j
	return nil
}

func (r *memJobs) UpsertAssetUsage(_ context.Context, jobID, assetID string, quantity int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.usages[usageKey{jobID: jobID, assetID: assetID}] += quantity
	return nil
}

// --- Assets ---

type memAssets struct{ m *Memory }

func (r *memAssets) List(_ context.Context) ([]models.Asset, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]models.Asset, 0, len(r.m.assets))
	for _, a := range r.m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memAssets) ListAvailable(_ context.Context, typ *models.AssetType) ([]models.Asset, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.Asset
	for _, a := range r.m.assets {
		if a.Quantity <= 0 {
			continue
		}
		if typ != nil && a.Type != *typ {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memAssets) Get(_ context.Context, id string) (models.Asset, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	a, ok := r.m.assets[id]
	if !ok {
		return models.Asset{}, models.ErrAssetNotFound
	}
	return a, nil
}

func (r *memAssets) Create(_ context.Context, a models.Asset) (models.Asset, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.assets[a.ID] = a
	return a, nil
}

func (r *memAssets) Update(_ context.Context, a models.Asset) (models.Asset, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.assets[a.ID]; !ok {
		return models.Asset{}, models.ErrAssetNotFound
	}
	r.m.assets[a.ID] = a
	return a, nil
}

func (r *memAssets) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.assets[id]; !ok {
		return models.ErrAssetNotFound
	}
	delete(r.m.assets, id)
	return nil
}

func (r *memAssets) SetAssignedTo(_ context.Context, id string, technicianID *string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.assets[id]
	if !ok {
		return models.ErrAssetNotFound
	}
	if technicianID == nil {
		a.AssignedTo = ""
	} else {
		a.AssignedTo = *technicianID
	}
	r.m.assets[id] = a
	return nil
}

func (r *memAssets) SetQuantity(_ context.Context, id string, quantity int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.assets[id]
	if !ok {
		return models.ErrAssetNotFound
	}
	a.Quantity = quantity
	r.m.assets[id] = a
	return nil
}

// --- Time entries ---

type memTimeEntries struct{ m *Memory }

func (r *memTimeEntries) Create(_ context.Context, e models.TimeEntry) (models.TimeEntry, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.timeEntries[e.ID] = e
	return e, nil
}

func (r *memTimeEntries) Get(_ context.Context, id string) (models.TimeEntry, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	e, ok := r.m.timeEntries[id]
	if !ok {
		return models.TimeEntry{}, models.ErrTimeEntryNotFound
	}
	return e, nil
}

func (r *memTimeEntries) End(_ context.Context, id string, endTime time.Time, breakMinutes *int, notes *string) (models.TimeEntry, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.timeEntries[id]
	if !ok {
		return models.TimeEntry{}, models.ErrTimeEntryNotFound
	}
	if e.EndTime != nil {
		return models.TimeEntry{}, models.ErrTimeEntryClosed
	}
	t := endTime
	e.EndTime = &t
	if breakMinutes != nil {
		v := *breakMinutes
		e.BreakMinutes = &v
	}
	if notes != nil {
		e.Notes = *notes
	}
	r.m.timeEntries[id] = e
	return e, nil
}

func (r *memTimeEntries) ListByTechnician(_ context.Context, technicianID string, from, to *time.Time) ([]models.TimeEntry, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.TimeEntry
	for _, e := range r.m.timeEntries {
		if e.TechnicianID != technicianID {
			continue
		}
		if from != nil && e.StartTime.Before(*from) {
			continue
		}
		if to != nil && !e.StartTime.Before(*to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (r *memTimeEntries) ListByJob(_ context.Context, jobID string) ([]models.TimeEntry, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.TimeEntry
	for _, e := range r.m.timeEntries {
		if e.JobID != jobID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memTimeEntries) ListClosedInRange(_ context.Context, technicianID string, from, to time.Time) ([]models.TimeEntry, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []models.TimeEntry
	for _, e := range r.m.timeEntries {
		if e.TechnicianID != technicianID || e.EndTime == nil {
			continue
		}
		if e.StartTime.Before(from) || !e.StartTime.Before(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}
