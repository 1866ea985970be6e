package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fieldops/internal/models"
	"fieldops/internal/repo"
)

// TechnicianService manages technician records and their schedules.
type TechnicianService struct {
	store repo.Store
}

func (s *TechnicianService) FindAll(ctx context.Context) ([]models.Technician, error) {
	return s.store.Technicians.List(ctx)
}

func (s *TechnicianService) FindByStatus(ctx context.Context, status models.TechnicianStatus) ([]models.Technician, error) {
	return s.store.Technicians.ListByStatus(ctx, status)
}

func (s *TechnicianService) FindOne(ctx context.Context, id string) (models.Technician, error) {
	return s.store.Technicians.Get(ctx, id)
}

func (s *TechnicianService) Create(ctx context.Context, t models.Technician) (models.Technician, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.TechnicianAvailable
	}
	return s.store.Technicians.Create(ctx, t)
}

func (s *TechnicianService) Update(ctx context.Context, t models.Technician) (models.Technician, error) {
	return s.store.Technicians.Update(ctx, t)
}

func (s *TechnicianService) Delete(ctx context.Context, id string) error {
	return s.store.Technicians.Delete(ctx, id)
}

func (s *TechnicianService) UpdateStatus(ctx context.Context, id string, status models.TechnicianStatus) error {
	return s.store.Technicians.SetStatus(ctx, id, status)
}

func (s *TechnicianService) UpdateLocation(ctx context.Context, id string, loc models.Location) error {
	return s.store.Technicians.SetLocation(ctx, id, loc)
}

// GetSchedule returns the technician's jobs scheduled within the given day
// (default today), ordered by scheduled start.
func (s *TechnicianService) GetSchedule(ctx context.Context, technicianID string, date *string) ([]models.Job, error) {
	if _, err := s.store.Technicians.Get(ctx, technicianID); err != nil {
		return nil, err
	}
	from, to, err := dayRange(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return s.store.Jobs.ListScheduled(ctx, technicianID, from, to)
}
