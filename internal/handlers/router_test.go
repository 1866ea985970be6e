package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"fieldops/internal/models"
	"fieldops/internal/repo"
	"fieldops/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := repo.NewMemory().Store()
	if err := repo.Seed(context.Background(), st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	mux := chi.NewRouter()
	RegisterRoutes(mux, service.New(st))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, res *http.Response, dst any) {
	t.Helper()
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestListTechnicians(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/technicians")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var technicians []models.Technician
	decodeBody(t, res, &technicians)
	if len(technicians) != 3 {
		t.Fatalf("technicians = %d, want 3", len(technicians))
	}

	res, err = http.Get(srv.URL + "/technicians?status=busy")
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, res, &technicians)
	if len(technicians) != 1 || technicians[0].ID != "tech002" {
		t.Fatalf("busy technicians = %+v", technicians)
	}

	res, err = http.Get(srv.URL + "/technicians?status=sleeping")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status filter: status = %d", res.StatusCode)
	}
}

func TestGetTechnicianNotFound(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/technicians/tech999")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
}

func TestCreateJobREST(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"title": "Fan replacement",
		"description": "Replace exhaust fan",
		"customerName": "ABC",
		"customerAddress": "789 Business Ave",
		"customerPhone": "+1-555-0201",
		"assignedTechnician": "tech001",
		"scheduledStart": "2025-06-06T09:00:00Z",
		"scheduledEnd": "2025-06-06T11:00:00Z"
	}`
	res, err := http.Post(srv.URL+"/jobs", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", res.StatusCode)
	}
	var job models.Job
	decodeBody(t, res, &job)
	if job.Status != models.JobScheduled || job.Priority != models.PriorityMedium {
		t.Fatalf("job = %+v", job)
	}

	// Missing required fields
	res, err = http.Post(srv.URL+"/jobs", "application/json", strings.NewReader(`{"description":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestUpdateJobStatusREST(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/jobs/job002/status", strings.NewReader(`{"status":"in_progress"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var job models.Job
	decodeBody(t, res, &job)
	if job.Status != models.JobInProgress || job.ActualStart == nil {
		t.Fatalf("job = %+v", job)
	}

	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/jobs/job002/status", strings.NewReader(`{"status":"paused"}`))
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status: status = %d", res.StatusCode)
	}
}

func TestTimeEntryEndConflict(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Post(srv.URL+"/time-entries/start", "application/json",
		strings.NewReader(`{"technicianId":"tech001","jobId":"job001"}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("start: status = %d", res.StatusCode)
	}
	var entry models.TimeEntry
	decodeBody(t, res, &entry)

	endURL := srv.URL + "/time-entries/" + entry.ID + "/end"
	req, _ := http.NewRequest(http.MethodPut, endURL, strings.NewReader(`{"breakMinutes":5}`))
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, res, &entry)
	if entry.EndTime == nil || entry.BreakMinutes == nil || *entry.BreakMinutes != 5 {
		t.Fatalf("entry = %+v", entry)
	}

	req, _ = http.NewRequest(http.MethodPut, endURL, strings.NewReader(`{}`))
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("second end: status = %d, want 409", res.StatusCode)
	}
}

func TestTimeEntriesRequireScope(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/time-entries")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
	var body map[string]string
	decodeBody(t, res, &body)
	if body["error"] != "Either technicianId or jobId must be provided" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestAvailableAssets(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/assets/available?type=tool")
	if err != nil {
		t.Fatal(err)
	}
	var assets []models.Asset
	decodeBody(t, res, &assets)
	if len(assets) != 2 {
		t.Fatalf("tools = %+v", assets)
	}
}

func TestAssetAssignUnassign(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Post(srv.URL+"/assets/asset003/assign", "application/json",
		strings.NewReader(`{"technicianId":"tech001"}`))
	if err != nil {
		t.Fatal(err)
	}
	var a models.Asset
	decodeBody(t, res, &a)
	if a.AssignedTo != "tech001" {
		t.Fatalf("assignedTo = %q", a.AssignedTo)
	}

	res, err = http.Post(srv.URL+"/assets/asset003/unassign", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, res, &a)
	if a.AssignedTo != "" {
		t.Fatalf("assignedTo = %q, want empty", a.AssignedTo)
	}
}

func TestTotalHoursEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/time-entries/technician/tech001/total-hours?start=2025-06-01T00:00:00Z&end=2025-06-30T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var body map[string]float64
	decodeBody(t, res, &body)
	// The only seeded entry is still open, so nothing counts yet.
	if body["totalHours"] != 0 {
		t.Fatalf("totalHours = %v, want 0", body["totalHours"])
	}

	res, err = http.Get(srv.URL + "/time-entries/technician/tech001/total-hours?start=nonsense")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad start: status = %d", res.StatusCode)
	}
}
