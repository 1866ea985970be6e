package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"fieldops/internal/models"
	"fieldops/internal/repo"
)

// AssetService manages the shared asset pool.
type AssetService struct {
	store repo.Store
}

func (s *AssetService) FindAll(ctx context.Context) ([]models.Asset, error) {
	return s.store.Assets.List(ctx)
}

// FindAvailable returns assets with quantity > 0. The type filter is passed
// through unvalidated; unknown types simply match nothing.
func (s *AssetService) FindAvailable(ctx context.Context, typ *models.AssetType) ([]models.Asset, error) {
	return s.store.Assets.ListAvailable(ctx, typ)
}

func (s *AssetService) FindOne(ctx context.Context, id string) (models.Asset, error) {
	return s.store.Assets.Get(ctx, id)
}

func (s *AssetService) Create(ctx context.Context, a models.Asset) (models.Asset, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Condition == "" {
		a.Condition = models.ConditionGood
	}
	return s.store.Assets.Create(ctx, a)
}

func (s *AssetService) Update(ctx context.Context, a models.Asset) (models.Asset, error) {
	return s.store.Assets.Update(ctx, a)
}

func (s *AssetService) Delete(ctx context.Context, id string) error {
	return s.store.Assets.Delete(ctx, id)
}

// AssignToTechnician sets the asset's assignee after checking both sides
// exist.
func (s *AssetService) AssignToTechnician(ctx context.Context, assetID, technicianID string) error {
	if _, err := s.store.Assets.Get(ctx, assetID); err != nil {
		return err
	}
	if _, err := s.store.Technicians.Get(ctx, technicianID); err != nil {
		return err
	}
	return s.store.Assets.SetAssignedTo(ctx, assetID, &technicianID)
}

func (s *AssetService) Unassign(ctx context.Context, assetID string) error {
	return s.store.Assets.SetAssignedTo(ctx, assetID, nil)
}

func (s *AssetService) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 0 {
		return errors.New("quantity must be non-negative")
	}
	return s.store.Assets.SetQuantity(ctx, id, quantity)
}
