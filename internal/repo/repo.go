// internal/repo/repo.go
package repo

import (
	"context"
	"time"

	"fieldops/internal/models"
)

// JobFilter narrows job listings. Zero values mean "no filter".
type JobFilter struct {
	TechnicianID string
	Status       models.JobStatus
}

// TechnicianRepo defines the technician persistence contract.
type TechnicianRepo interface {
	List(ctx context.Context) ([]models.Technician, error)
	ListByStatus(ctx context.Context, status models.TechnicianStatus) ([]models.Technician, error)
	Get(ctx context.Context, id string) (models.Technician, error)
	Create(ctx context.Context, t models.Technician) (models.Technician, error)
	Update(ctx context.Context, t models.Technician) (models.Technician, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status models.TechnicianStatus) error
	SetLocation(ctx context.Context, id string, loc models.Location) error
}

// JobRepo defines the job persistence contract. SetStatus performs the
// actualStart/actualEnd stamping as a conditional set-if-null write so two
// concurrent first transitions cannot both stamp.
type JobRepo interface {
	List(ctx context.Context, f JobFilter) ([]models.Job, error)
	ListScheduled(ctx context.Context, technicianID string, from, to time.Time) ([]models.Job, error)
	Get(ctx context.Context, id string) (models.Job, error)
	Create(ctx context.Context, j models.Job) (models.Job, error)
	Update(ctx context.Context, j models.Job) (models.Job, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status models.JobStatus, now time.Time) (models.Job, error)
	SetWorkNotes(ctx context.Context, id, notes string) error
	// UpsertAssetUsage accumulates: an existing (job, asset) row gains quantity.
	UpsertAssetUsage(ctx context.Context, jobID, assetID string, quantity int) error
}

// AssetRepo defines the asset persistence contract.
type AssetRepo interface {
	List(ctx context.Context) ([]models.Asset, error)
	// ListAvailable returns assets with quantity > 0, optionally type-filtered.
	ListAvailable(ctx context.Context, typ *models.AssetType) ([]models.Asset, error)
	Get(ctx context.Context, id string) (models.Asset, error)
	Create(ctx context.Context, a models.Asset) (models.Asset, error)
	Update(ctx context.Context, a models.Asset) (models.Asset, error)
	Delete(ctx context.Context, id string) error
	// SetAssignedTo with nil technicianID unassigns.
	SetAssignedTo(ctx context.Context, id string, technicianID *string) error
	SetQuantity(ctx context.Context, id string, quantity int) error
}

// TimeEntryRepo defines the time-entry persistence contract. End fails with
// models.ErrTimeEntryClosed when the entry already has an end time; nil
// breakMinutes/notes leave the stored fields untouched.
type TimeEntryRepo interface {
	Create(ctx context.Context, e models.TimeEntry) (models.TimeEntry, error)
	Get(ctx context.Context, id string) (models.TimeEntry, error)
	End(ctx context.Context, id string, endTime time.Time, breakMinutes *int, notes *string) (models.TimeEntry, error)
	// ListByTechnician orders by start time descending; nil bounds mean open-ended.
	ListByTechnician(ctx context.Context, technicianID string, from, to *time.Time) ([]models.TimeEntry, error)
	// ListByJob orders by start time ascending and ignores dates (full history).
	ListByJob(ctx context.Context, jobID string) ([]models.TimeEntry, error)
	ListClosedInRange(ctx context.Context, technicianID string, from, to time.Time) ([]models.TimeEntry, error)
}

// Store aggregates the per-entity repositories handed to the service layer.
type Store struct {
	Technicians TechnicianRepo
	Jobs        JobRepo
	Assets      AssetRepo
	TimeEntries TimeEntryRepo
}
