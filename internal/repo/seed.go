package repo

import (
	"context"
	"time"

	"fieldops/internal/models"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timeRef(s string) *time.Time {
	t := mustTime(s)
	return &t
}

// Seed loads the demo dataset into the store. Used by the memory backend on
// startup and by tests that want a populated world.
func Seed(ctx context.Context, st Store) error {
	technicians := []models.Technician{
		{
			ID:     "tech001",
			Name:   "John Smith",
			Email:  "john.smith@company.com",
			Phone:  "+1-555-0101",
			Skills: []string{"HVAC", "Electrical", "Plumbing"},
			Status: models.TechnicianAvailable,
			Location: &models.Location{
				Lat:     40.7128,
				Lng:     -74.0060,
				Address: "123 Main St, New York, NY",
			},
		},
		{
			ID:     "tech002",
			Name:   "Sarah Johnson",
			Email:  "sarah.johnson@company.com",
			Phone:  "+1-555-0102",
			Skills: []string{"Electrical", "Security Systems"},
			Status: models.TechnicianBusy,
			Location: &models.Location{
				Lat:     40.7589,
				Lng:     -73.9851,
				Address: "456 Broadway, New York, NY",
			},
		},
		{
			ID:     "tech003",
			Name:   "Mike Chen",
			Email:  "mike.chen@company.com",
			Phone:  "+1-555-0103",
			Skills: []string{"HVAC", "Mechanical"},
			Status: models.TechnicianAvailable,
		},
	}
	for _, t := range technicians {
		if _, err := st.Technicians.Create(ctx, t); err != nil {
			return err
		}
	}

	jobs := []models.Job{
		{
			ID:          "job001",
			Title:       "AC Unit Repair",
			Description: "Customer reports AC not cooling properly. Need to diagnose and repair.",
			Customer: models.Customer{
				Name:    "ABC Corporation",
				Address: "789 Business Ave, New York, NY 10001",
				Phone:   "+1-555-0201",
			},
			AssignedTechnician: "tech001",
			ScheduledStart:     mustTime("2025-06-03T09:00:00Z"),
			ScheduledEnd:       mustTime("2025-06-03T12:00:00Z"),
			ActualStart:        timeRef("2025-06-03T09:15:00Z"),
			Status:             models.JobInProgress,
			Priority:           models.PriorityHigh,
			WorkNotes:          "Found refrigerant leak in evaporator coil. Ordering replacement part.",
		},
		{
			ID:          "job002",
			Title:       "Electrical Panel Inspection",
			Description: "Annual electrical panel safety inspection and testing.",
			Customer: models.Customer{
				Name:    "Downtown Hotel",
				Address: "321 Hotel Plaza, New York, NY 10002",
				Phone:   "+1-555-0202",
			},
			AssignedTechnician: "tech002",
			ScheduledStart:     mustTime("2025-06-03T14:00:00Z"),
			ScheduledEnd:       mustTime("2025-06-03T16:00:00Z"),
			Status:             models.JobScheduled,
			Priority:           models.PriorityMedium,
		},
		{
			ID:          "job003",
			Title:       "Heating System Maintenance",
			Description: "Quarterly heating system maintenance and filter replacement.",
			Customer: models.Customer{
				Name:    "Retail Store Chain",
				Address: "555 Shopping Center, New York, NY 10003",
				Phone:   "+1-555-0203",
			},
			AssignedTechnician: "tech003",
			ScheduledStart:     mustTime("2025-06-04T08:00:00Z"),
			ScheduledEnd:       mustTime("2025-06-04T10:00:00Z"),
			Status:             models.JobScheduled,
			Priority:           models.PriorityLow,
		},
	}
	for _, j := range jobs {
		if _, err := st.Jobs.Create(ctx, j); err != nil {
			return err
		}
	}

	assets := []models.Asset{
		{
			ID:              "asset001",
			Name:            "Digital Multimeter",
			Type:            models.AssetTool,
			Description:     "Fluke 87V Industrial Multimeter",
			Quantity:        5,
			Location:        "Warehouse A",
			AssignedTo:      "tech001",
			Condition:       models.ConditionExcellent,
			LastMaintenance: timeRef("2025-05-01T00:00:00Z"),
		},
		{
			ID:          "asset002",
			Name:        "Pipe Wrench Set",
			Type:        models.AssetTool,
			Description: `Heavy-duty pipe wrench set (6", 10", 14")`,
			Quantity:    3,
			Location:    "Van 002",
			AssignedTo:  "tech002",
			Condition:   models.ConditionGood,
		},
		{
			ID:              "asset003",
			Name:            "Refrigerant Recovery Unit",
			Type:            models.AssetEquipment,
			Description:     "R-410A refrigerant recovery and recycling unit",
			Quantity:        2,
			Location:        "Warehouse B",
			Condition:       models.ConditionGood,
			LastMaintenance: timeRef("2025-04-15T00:00:00Z"),
		},
		{
			ID:          "asset004",
			Name:        "HVAC Filters",
			Type:        models.AssetPart,
			Description: "20x25x1 MERV 11 air filters",
			Quantity:    50,
			Location:    "Warehouse A",
			Condition:   models.ConditionExcellent,
		},
	}
	for _, a := range assets {
		if _, err := st.Assets.Create(ctx, a); err != nil {
			return err
		}
	}

	usages := []models.AssetUsage{
		{JobID: "job001", AssetID: "asset001", QuantityUsed: 1},
		{JobID: "job001", AssetID: "asset003", QuantityUsed: 1},
	}
	for _, u := range usages {
		if err := st.Jobs.UpsertAssetUsage(ctx, u.JobID, u.AssetID, u.QuantityUsed); err != nil {
			return err
		}
	}

	entries := []models.TimeEntry{
		{
			ID:           "time001",
			TechnicianID: "tech001",
			JobID:        "job001",
			StartTime:    mustTime("2025-06-03T09:15:00Z"),
			Notes:        "Started diagnosing AC unit issue",
		},
	}
	for _, e := range entries {
		if _, err := st.TimeEntries.Create(ctx, e); err != nil {
			return err
		}
	}

	return nil
}
