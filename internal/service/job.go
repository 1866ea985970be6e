package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/models"
	"fieldops/internal/repo"
)

// JobService manages job intake, status transitions and asset usage.
type JobService struct {
	store repo.Store
}

func (s *JobService) FindAll(ctx context.Context, f repo.JobFilter) ([]models.Job, error) {
	return s.store.Jobs.List(ctx, f)
}

func (s *JobService) FindOne(ctx context.Context, id string) (models.Job, error) {
	return s.store.Jobs.Get(ctx, id)
}

// Create registers a new job. New jobs start scheduled; priority defaults to
// medium when the caller omits it.
func (s *JobService) Create(ctx context.Context, j models.Job) (models.Job, error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	j.Status = models.JobScheduled
	if j.Priority == "" {
		j.Priority = models.PriorityMedium
	}
	return s.store.Jobs.Create(ctx, j)
}

func (s *JobService) Update(ctx context.Context, j models.Job) (models.Job, error) {
	return s.store.Jobs.Update(ctx, j)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.store.Jobs.Delete(ctx, id)
}

// UpdateStatus transitions the job. The store stamps actualStart on the first
// in_progress transition and actualEnd on the first completed transition.
func (s *JobService) UpdateStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error) {
	return s.store.Jobs.SetStatus(ctx, id, status, time.Now().UTC())
}

// AddWorkNotes overwrites the job's work notes.
func (s *JobService) AddWorkNotes(ctx context.Context, id, notes string) error {
	return s.store.Jobs.SetWorkNotes(ctx, id, notes)
}

// AddAssetUsage records quantity of an asset consumed by a job; repeated
// recordings for the same pair accumulate.
func (s *JobService) AddAssetUsage(ctx context.Context, jobID, assetID string, quantity int) error {
	if _, err := s.store.Jobs.Get(ctx, jobID); err != nil {
		return err
	}
	if _, err := s.store.Assets.Get(ctx, assetID); err != nil {
		return err
	}
	return s.store.Jobs.UpsertAssetUsage(ctx, jobID, assetID, quantity)
}
