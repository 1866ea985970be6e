package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"fieldops/internal/service"
)

// ErrMissingEntryScope is raised when get_time_entries has neither scope
// argument. The text is part of the tool contract.
var ErrMissingEntryScope = errors.New("Either technicianId or jobId must be provided")

type startTimeTrackingHandler struct {
	svc *service.TimeEntryService
}

func (h *startTimeTrackingHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	technicianID, err := RequireString(args, "technicianId")
	if err != nil {
		return nil, err
	}
	jobID, err := RequireString(args, "jobId")
	if err != nil {
		return nil, err
	}
	notes := OptionalString(args, "notes")

	entry, err := h.svc.Start(ctx, technicianID, jobID, notes)
	if err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Time tracking started for technician %s on job %s. Time entry ID: %s",
		technicianID, jobID, entry.ID)), nil
}

type endTimeTrackingHandler struct {
	svc *service.TimeEntryService
}

func (h *endTimeTrackingHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	timeEntryID, err := RequireString(args, "timeEntryId")
	if err != nil {
		return nil, err
	}
	// Absent breakMinutes/notes are forwarded as nil so the store can
	// distinguish "leave untouched" from "clear".
	var breakMinutes *int
	if n, err := OptionalNumber(args, "breakMinutes"); err != nil {
		return nil, err
	} else if n != nil {
		m := int(*n)
		breakMinutes = &m
	}
	notes := OptionalString(args, "notes")

	if _, err := h.svc.End(ctx, timeEntryID, breakMinutes, notes); err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Time tracking ended for time entry %s", timeEntryID)), nil
}

type getTimeEntriesHandler struct {
	svc *service.TimeEntryService
}

func (h *getTimeEntriesHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	technicianID := OptionalString(args, "technicianId")
	jobID := OptionalString(args, "jobId")
	date := OptionalString(args, "date")

	switch {
	case technicianID != nil:
		entries, err := h.svc.FindByTechnician(ctx, *technicianID, date)
		if err != nil {
			return nil, err
		}
		return jsonText(entries)
	case jobID != nil:
		// Job-scoped queries return full history; the date filter does not apply.
		entries, err := h.svc.FindByJob(ctx, *jobID)
		if err != nil {
			return nil, err
		}
		return jsonText(entries)
	default:
		return nil, ErrMissingEntryScope
	}
}
