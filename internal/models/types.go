// internal/models/types.go
package models

import (
	"errors"
	"time"
)

type TechnicianStatus string

const (
	TechnicianAvailable TechnicianStatus = "available"
	TechnicianBusy      TechnicianStatus = "busy"
	TechnicianOffline   TechnicianStatus = "offline"
)

type JobStatus string

const (
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type AssetType string

const (
	AssetTool      AssetType = "tool"
	AssetEquipment AssetType = "equipment"
	AssetPart      AssetType = "part"
	AssetMaterial  AssetType = "material"
)

type AssetCondition string

const (
	ConditionExcellent AssetCondition = "excellent"
	ConditionGood      AssetCondition = "good"
	ConditionFair      AssetCondition = "fair"
	ConditionPoor      AssetCondition = "poor"
)

// Location is a technician's last known position.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Technician struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Skills   []string         `json:"skills"`
	Status   TechnicianStatus `json:"status"`
	Location *Location        `json:"location,omitempty"`
}

// Customer is always inlined on a job; it is not a standalone entity.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Job struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Customer           Customer     `json:"customer"`
	AssignedTechnician string       `json:"assignedTechnician"`
	ScheduledStart     time.Time    `json:"scheduledStart"`
	ScheduledEnd       time.Time    `json:"scheduledEnd"`
	ActualStart        *time.Time   `json:"actualStart,omitempty"`
	ActualEnd          *time.Time   `json:"actualEnd,omitempty"`
	Status             JobStatus    `json:"status"`
	Priority           Priority     `json:"priority"`
	WorkNotes          string       `json:"workNotes,omitempty"`
	AssetUsages        []AssetUsage `json:"assetUsages,omitempty"`
	Photos             []string     `json:"photos,omitempty"`
	CustomerSignature  string       `json:"customerSignature,omitempty"`
}

type Asset struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            AssetType      `json:"type"`
	Description     string         `json:"description"`
	Quantity        int            `json:"quantity"`
	Location        string         `json:"location"`
	AssignedTo      string         `json:"assignedTo,omitempty"`
	Condition       AssetCondition `json:"condition"`
	LastMaintenance *time.Time     `json:"lastMaintenance,omitempty"`
}

type TimeEntry struct {
	ID           string     `json:"id"`
	TechnicianID string     `json:"technicianId"`
	JobID        string     `json:"jobId"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	BreakMinutes *int       `json:"breakMinutes,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// AssetUsage accumulates the quantity of an asset consumed by a job.
// (jobId, assetId) is unique; repeated recordings add to QuantityUsed.
type AssetUsage struct {
	JobID        string `json:"jobId"`
	AssetID      string `json:"assetId"`
	QuantityUsed int    `json:"quantityUsed"`
}

var (
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrTimeEntryNotFound  = errors.New("time entry not found")
	ErrTimeEntryClosed    = errors.New("time entry already ended")
)

// ParseJobStatus validates a status string at the REST boundary.
// The tool surface passes status through unvalidated; the store rejects
// unknown values there.
func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case JobScheduled, JobInProgress, JobCompleted, JobCancelled:
		return JobStatus(s), nil
	}
	return "", errors.New("invalid job status: " + s)
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	}
	return "", errors.New("invalid priority: " + s)
}

func ParseTechnicianStatus(s string) (TechnicianStatus, error) {
	switch TechnicianStatus(s) {
	case TechnicianAvailable, TechnicianBusy, TechnicianOffline:
		return TechnicianStatus(s), nil
	}
	return "", errors.New("invalid technician status: " + s)
}

func ParseAssetType(s string) (AssetType, error) {
	switch AssetType(s) {
	case AssetTool, AssetEquipment, AssetPart, AssetMaterial:
		return AssetType(s), nil
	}
	return "", errors.New("invalid asset type: " + s)
}
