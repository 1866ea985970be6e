// Package mcp implements the tool-call surface: argument normalization,
// response formatting, one handler per tool, and the dispatch registry that
// is the single error boundary for the whole surface.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"fieldops/internal/service"
	"fieldops/internal/telemetry"
)

// Handler is the capability every tool implements. Handlers never catch:
// normalization and domain errors propagate to the registry boundary.
type Handler interface {
	Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)
}

// Registry maps tool names to handlers. It is populated once at construction
// and read-only afterwards, safe for concurrent dispatch.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds the registry over the domain services, one handler per
// tool.
func NewRegistry(svcs service.Services) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}

	r.register("get_technicians", &getTechniciansHandler{svc: svcs.Technicians})
	r.register("get_technician_schedule", &getTechnicianScheduleHandler{svc: svcs.Technicians})
	r.register("update_technician_location", &updateTechnicianLocationHandler{svc: svcs.Technicians})

	r.register("create_job", &createJobHandler{svc: svcs.Jobs})
	r.register("get_jobs", &getJobsHandler{svc: svcs.Jobs})
	r.register("get_job_details", &getJobDetailsHandler{svc: svcs.Jobs})
	r.register("update_job_status", &updateJobStatusHandler{svc: svcs.Jobs})
	r.register("add_work_notes", &addWorkNotesHandler{svc: svcs.Jobs})
	r.register("record_asset_usage", &recordAssetUsageHandler{svc: svcs.Jobs})

	r.register("get_available_assets", &getAvailableAssetsHandler{svc: svcs.Assets})
	r.register("assign_asset", &assignAssetHandler{svc: svcs.Assets})

	r.register("start_time_tracking", &startTimeTrackingHandler{svc: svcs.TimeEntries})
	r.register("end_time_tracking", &endTimeTrackingHandler{svc: svcs.TimeEntries})
	r.register("get_time_entries", &getTimeEntriesHandler{svc: svcs.TimeEntries})

	return r
}

func (r *Registry) register(name string, h Handler) {
	r.handlers[name] = h
}

// Names returns the registered tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Dispatch resolves and invokes a handler. Unregistered names fail with
// UnknownToolError; handler errors propagate untouched.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	return h.Handle(ctx, args)
}

// Call is the single error boundary for the tool surface: any error raised
// during dispatch becomes an isError envelope with text "Error: <message>".
// No error ever propagates past it.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	res, err := r.Dispatch(ctx, name, args)
	if err != nil {
		telemetry.ToolCalls.WithLabelValues(name, "error").Inc()
		return mcp.NewToolResultError("Error: " + err.Error())
	}
	telemetry.ToolCalls.WithLabelValues(name, "ok").Inc()
	return res
}
