package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"fieldops/internal/models"
	"fieldops/internal/repo"
	"fieldops/internal/service"
)

func seededWorld(t *testing.T) (*Registry, repo.Store) {
	t.Helper()
	st := repo.NewMemory().Store()
	if err := repo.Seed(context.Background(), st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewRegistry(service.New(st)), st
}

func TestCreateJobEndToEnd(t *testing.T) {
	reg, _ := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "create_job", map[string]any{
		"title":              "AC repair",
		"description":        "Compressor replacement",
		"customerName":       "ABC",
		"customerAddress":    "789 Business Ave",
		"customerPhone":      "+1-555-0201",
		"assignedTechnician": "tech001",
		"scheduledStart":     "2025-06-03T09:00:00Z",
		"scheduledEnd":       "2025-06-03T12:00:00Z",
	})
	if res.IsError {
		t.Fatalf("create_job failed: %s", resultText(t, res))
	}
	text := resultText(t, res)
	const prefix = "Job created successfully with ID: "
	if !strings.HasPrefix(text, prefix) {
		t.Fatalf("text = %q", text)
	}
	id := strings.TrimPrefix(text, prefix)

	res = reg.Call(ctx, "get_job_details", map[string]any{"jobId": id})
	if res.IsError {
		t.Fatalf("get_job_details failed: %s", resultText(t, res))
	}
	var job models.Job
	if err := json.Unmarshal([]byte(resultText(t, res)), &job); err != nil {
		t.Fatalf("unmarshal job: %v", err)
	}
	if job.Status != models.JobScheduled {
		t.Fatalf("status = %s, want scheduled", job.Status)
	}
	if job.Priority != models.PriorityMedium {
		t.Fatalf("priority = %s, want medium", job.Priority)
	}
	if job.ActualStart != nil || job.ActualEnd != nil {
		t.Fatal("new job must not have actual timestamps")
	}
}

func TestUpdateJobStatusStampsOnce(t *testing.T) {
	reg, st := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "update_job_status", map[string]any{"jobId": "job002", "status": "in_progress"})
	if res.IsError {
		t.Fatalf("first transition failed: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "Job job002 status updated to in_progress" {
		t.Fatalf("text = %q", got)
	}

	first, err := st.Jobs.Get(ctx, "job002")
	if err != nil {
		t.Fatal(err)
	}
	if first.ActualStart == nil {
		t.Fatal("actualStart not stamped on first transition")
	}

	res = reg.Call(ctx, "update_job_status", map[string]any{"jobId": "job002", "status": "in_progress"})
	if res.IsError {
		t.Fatalf("second transition failed: %s", resultText(t, res))
	}
	second, err := st.Jobs.Get(ctx, "job002")
	if err != nil {
		t.Fatal(err)
	}
	if !second.ActualStart.Equal(*first.ActualStart) {
		t.Fatalf("actualStart overwritten: %v -> %v", first.ActualStart, second.ActualStart)
	}

	reg.Call(ctx, "update_job_status", map[string]any{"jobId": "job002", "status": "completed"})
	done, err := st.Jobs.Get(ctx, "job002")
	if err != nil {
		t.Fatal(err)
	}
	if done.ActualEnd == nil {
		t.Fatal("actualEnd not stamped on completed transition")
	}
	if !done.ActualStart.Equal(*first.ActualStart) {
		t.Fatal("actualStart must survive later transitions")
	}
}

func TestRecordAssetUsageAccumulates(t *testing.T) {
	reg, st := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "record_asset_usage", map[string]any{"jobId": "job001", "assetId": "asset002", "quantity": float64(2)})
	if res.IsError {
		t.Fatalf("first usage failed: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "Recorded usage of asset asset002 (quantity: 2) for job job001" {
		t.Fatalf("text = %q", got)
	}

	res = reg.Call(ctx, "record_asset_usage", map[string]any{"jobId": "job001", "assetId": "asset002", "quantity": float64(3)})
	if res.IsError {
		t.Fatalf("second usage failed: %s", resultText(t, res))
	}

	job, err := st.Jobs.Get(ctx, "job001")
	if err != nil {
		t.Fatal(err)
	}
	var got int
	for _, u := range job.AssetUsages {
		if u.AssetID == "asset002" {
			got = u.QuantityUsed
		}
	}
	if got != 5 {
		t.Fatalf("quantityUsed = %d, want 5", got)
	}
}

func TestRecordAssetUsageDefaultQuantity(t *testing.T) {
	reg, st := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "record_asset_usage", map[string]any{"jobId": "job002", "assetId": "asset004"})
	if res.IsError {
		t.Fatalf("usage failed: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "Recorded usage of asset asset004 (quantity: 1) for job job002" {
		t.Fatalf("text = %q", got)
	}

	// Not coercible also falls back to 1.
	res = reg.Call(ctx, "record_asset_usage", map[string]any{"jobId": "job002", "assetId": "asset004", "quantity": "a few"})
	if res.IsError {
		t.Fatalf("usage failed: %s", resultText(t, res))
	}

	job, err := st.Jobs.Get(ctx, "job002")
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range job.AssetUsages {
		if u.AssetID == "asset004" && u.QuantityUsed != 2 {
			t.Fatalf("quantityUsed = %d, want 2", u.QuantityUsed)
		}
	}
}

func TestGetTimeEntriesRequiresScope(t *testing.T) {
	reg, _ := seededWorld(t)

	res := reg.Call(context.Background(), "get_time_entries", map[string]any{})
	if !res.IsError {
		t.Fatal("want isError")
	}
	if got := resultText(t, res); got != "Error: Either technicianId or jobId must be provided" {
		t.Fatalf("text = %q", got)
	}
}

func TestTimeTrackingRoundTrip(t *testing.T) {
	reg, _ := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "start_time_tracking", map[string]any{"technicianId": "tech001", "jobId": "job001"})
	if res.IsError {
		t.Fatalf("start failed: %s", resultText(t, res))
	}
	text := resultText(t, res)
	const marker = "Time entry ID: "
	i := strings.Index(text, marker)
	if i < 0 {
		t.Fatalf("text = %q", text)
	}
	id := text[i+len(marker):]

	res = reg.Call(ctx, "end_time_tracking", map[string]any{"timeEntryId": id, "breakMinutes": float64(15)})
	if res.IsError {
		t.Fatalf("end failed: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "Time tracking ended for time entry "+id {
		t.Fatalf("text = %q", got)
	}

	// Close exactly once: second end fails.
	res = reg.Call(ctx, "end_time_tracking", map[string]any{"timeEntryId": id})
	if !res.IsError {
		t.Fatal("second end must fail")
	}
	if got := resultText(t, res); got != "Error: time entry already ended" {
		t.Fatalf("text = %q", got)
	}
}

func TestGetTimeEntriesByJobIgnoresDate(t *testing.T) {
	reg, _ := seededWorld(t)

	// Seeded entry starts 2025-06-03; a job-scoped query with another date
	// must still return it.
	res := reg.Call(context.Background(), "get_time_entries", map[string]any{"jobId": "job001", "date": "1999-01-01"})
	if res.IsError {
		t.Fatalf("query failed: %s", resultText(t, res))
	}
	var entries []models.TimeEntry
	if err := json.Unmarshal([]byte(resultText(t, res)), &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "time001" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestGetAvailableAssetsTypeFilter(t *testing.T) {
	reg, _ := seededWorld(t)

	res := reg.Call(context.Background(), "get_available_assets", map[string]any{"type": "part"})
	if res.IsError {
		t.Fatalf("query failed: %s", resultText(t, res))
	}
	var assets []models.Asset
	if err := json.Unmarshal([]byte(resultText(t, res)), &assets); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(assets) != 1 || assets[0].ID != "asset004" {
		t.Fatalf("assets = %+v", assets)
	}

	// Unknown types are passed through and match nothing.
	res = reg.Call(context.Background(), "get_available_assets", map[string]any{"type": "spaceship"})
	if res.IsError {
		t.Fatalf("query failed: %s", resultText(t, res))
	}
}

func TestAssignAsset(t *testing.T) {
	reg, st := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "assign_asset", map[string]any{"assetId": "asset003", "technicianId": "tech002"})
	if res.IsError {
		t.Fatalf("assign failed: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "Asset asset003 assigned to technician tech002" {
		t.Fatalf("text = %q", got)
	}

	a, err := st.Assets.Get(ctx, "asset003")
	if err != nil {
		t.Fatal(err)
	}
	if a.AssignedTo != "tech002" {
		t.Fatalf("assignedTo = %q", a.AssignedTo)
	}
}

func TestUpdateTechnicianLocation(t *testing.T) {
	reg, st := seededWorld(t)
	ctx := context.Background()

	res := reg.Call(ctx, "update_technician_location", map[string]any{
		"technicianId": "tech003",
		"latitude":     40.7484,
		"longitude":    -73.9857,
		"address":      "350 5th Ave, New York, NY",
	})
	if res.IsError {
		t.Fatalf("update failed: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "Location updated for technician tech003" {
		t.Fatalf("text = %q", got)
	}

	tech, err := st.Technicians.Get(ctx, "tech003")
	if err != nil {
		t.Fatal(err)
	}
	if tech.Location == nil || tech.Location.Lat != 40.7484 {
		t.Fatalf("location = %+v", tech.Location)
	}
}

func TestGetTechnicianSchedule(t *testing.T) {
	reg, _ := seededWorld(t)

	res := reg.Call(context.Background(), "get_technician_schedule", map[string]any{
		"technicianId": "tech001",
		"date":         "2025-06-03",
	})
	if res.IsError {
		t.Fatalf("schedule failed: %s", resultText(t, res))
	}
	var jobs []models.Job
	if err := json.Unmarshal([]byte(resultText(t, res)), &jobs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "job001" {
		t.Fatalf("jobs = %+v", jobs)
	}

	// Day scoping: the next day has nothing for tech001.
	res = reg.Call(context.Background(), "get_technician_schedule", map[string]any{
		"technicianId": "tech001",
		"date":         "2025-06-04",
	})
	if err := json.Unmarshal([]byte(resultText(t, res)), &jobs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("jobs = %+v, want none", jobs)
	}
}
