package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"fieldops/internal/models"
	"fieldops/internal/repo"
	"fieldops/internal/service"
)

type updateJobStatusHandler struct {
	svc *service.JobService
}

func (h *updateJobStatusHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	jobID, err := RequireString(args, "jobId")
	if err != nil {
		return nil, err
	}
	status, err := RequireString(args, "status")
	if err != nil {
		return nil, err
	}

	if _, err := h.svc.UpdateStatus(ctx, jobID, models.JobStatus(status)); err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Job %s status updated to %s", jobID, status)), nil
}

type addWorkNotesHandler struct {
	svc *service.JobService
}

func (h *addWorkNotesHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	jobID, err := RequireString(args, "jobId")
	if err != nil {
		return nil, err
	}
	notes, err := RequireString(args, "notes")
	if err != nil {
		return nil, err
	}

	if err := h.svc.AddWorkNotes(ctx, jobID, notes); err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Work notes added to job %s", jobID)), nil
}

type getJobsHandler struct {
	svc *service.JobService
}

func (h *getJobsHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	var f repo.JobFilter
	if technicianID := OptionalString(args, "technicianId"); technicianID != nil {
		f.TechnicianID = *technicianID
	}
	if status := OptionalString(args, "status"); status != nil {
		f.Status = models.JobStatus(*status)
	}

	jobs, err := h.svc.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return jsonText(jobs)
}

type getJobDetailsHandler struct {
	svc *service.JobService
}

func (h *getJobDetailsHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	jobID, err := RequireString(args, "jobId")
	if err != nil {
		return nil, err
	}

	job, err := h.svc.FindOne(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return jsonText(job)
}

type createJobHandler struct {
	svc *service.JobService
}

func (h *createJobHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	job := models.Job{Customer: models.Customer{}}

	var err error
	if job.Title, err = RequireString(args, "title"); err != nil {
		return nil, err
	}
	if job.Description, err = RequireString(args, "description"); err != nil {
		return nil, err
	}
	if job.Customer.Name, err = RequireString(args, "customerName"); err != nil {
		return nil, err
	}
	if job.Customer.Address, err = RequireString(args, "customerAddress"); err != nil {
		return nil, err
	}
	if job.Customer.Phone, err = RequireString(args, "customerPhone"); err != nil {
		return nil, err
	}
	if job.AssignedTechnician, err = RequireString(args, "assignedTechnician"); err != nil {
		return nil, err
	}

	scheduledStart, err := RequireString(args, "scheduledStart")
	if err != nil {
		return nil, err
	}
	scheduledEnd, err := RequireString(args, "scheduledEnd")
	if err != nil {
		return nil, err
	}
	if job.ScheduledStart, err = time.Parse(time.RFC3339, scheduledStart); err != nil {
		return nil, fmt.Errorf("invalid scheduledStart: %w", err)
	}
	if job.ScheduledEnd, err = time.Parse(time.RFC3339, scheduledEnd); err != nil {
		return nil, fmt.Errorf("invalid scheduledEnd: %w", err)
	}

	if priority := OptionalString(args, "priority"); priority != nil {
		job.Priority = models.Priority(*priority)
	}

	created, err := h.svc.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Job created successfully with ID: %s", created.ID)), nil
}

type recordAssetUsageHandler struct {
	svc *service.JobService
}

func (h *recordAssetUsageHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	jobID, err := RequireString(args, "jobId")
	if err != nil {
		return nil, err
	}
	assetID, err := RequireString(args, "assetId")
	if err != nil {
		return nil, err
	}
	// Quantity defaults to 1 when absent or not coercible.
	quantity := 1
	if n, err := OptionalNumber(args, "quantity"); err == nil && n != nil {
		quantity = int(*n)
	}

	if err := h.svc.AddAssetUsage(ctx, jobID, assetID, quantity); err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Recorded usage of asset %s (quantity: %d) for job %s", assetID, quantity, jobID)), nil
}
