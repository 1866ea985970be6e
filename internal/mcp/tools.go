package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"fieldops/internal/service"
)

// NewServer creates a stdio MCP server with every tool registered.
func NewServer(svcs service.Services) *server.MCPServer {
	srv := server.NewMCPServer(
		"fieldops",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	Attach(srv, NewRegistry(svcs))
	return srv
}

// Attach bridges the registry onto an mcp-go server: every tool shares one
// handler func that routes through Registry.Call, the single error boundary.
func Attach(srv *server.MCPServer, reg *Registry) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return reg.Call(ctx, req.Params.Name, req.GetArguments()), nil
	}
	for _, t := range toolDefinitions() {
		srv.AddTool(t, handler)
	}
}

func toolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("get_technicians",
			mcp.WithDescription("Get list of all technicians with their current status and location"),
		),
		mcp.NewTool("get_technician_schedule",
			mcp.WithDescription("Get scheduled jobs for a specific technician"),
			mcp.WithString("technicianId",
				mcp.Required(),
				mcp.Description("ID of the technician"),
			),
			mcp.WithString("date",
				mcp.Description("Date in YYYY-MM-DD format (optional, defaults to today)"),
			),
		),
		mcp.NewTool("update_job_status",
			mcp.WithDescription("Update the status of a job (scheduled, in_progress, completed, cancelled)"),
			mcp.WithString("jobId",
				mcp.Required(),
				mcp.Description("ID of the job"),
			),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("New status for the job"),
				mcp.Enum("scheduled", "in_progress", "completed", "cancelled"),
			),
		),
		mcp.NewTool("add_work_notes",
			mcp.WithDescription("Add work notes to a job"),
			mcp.WithString("jobId",
				mcp.Required(),
				mcp.Description("ID of the job"),
			),
			mcp.WithString("notes",
				mcp.Required(),
				mcp.Description("Work notes to add"),
			),
		),
		mcp.NewTool("get_available_assets",
			mcp.WithDescription("Get list of available assets, optionally filtered by type"),
			mcp.WithString("type",
				mcp.Description("Filter by asset type (optional)"),
				mcp.Enum("tool", "equipment", "part", "material"),
			),
		),
		mcp.NewTool("assign_asset",
			mcp.WithDescription("Assign an asset to a technician"),
			mcp.WithString("assetId",
				mcp.Required(),
				mcp.Description("ID of the asset"),
			),
			mcp.WithString("technicianId",
				mcp.Required(),
				mcp.Description("ID of the technician"),
			),
		),
		mcp.NewTool("record_asset_usage",
			mcp.WithDescription("Record asset usage for a job"),
			mcp.WithString("jobId",
				mcp.Required(),
				mcp.Description("ID of the job"),
			),
			mcp.WithString("assetId",
				mcp.Required(),
				mcp.Description("ID of the asset"),
			),
			mcp.WithNumber("quantity",
				mcp.Description("Quantity used (default: 1)"),
			),
		),
		mcp.NewTool("start_time_tracking",
			mcp.WithDescription("Start time tracking for a technician on a job"),
			mcp.WithString("technicianId",
				mcp.Required(),
				mcp.Description("ID of the technician"),
			),
			mcp.WithString("jobId",
				mcp.Required(),
				mcp.Description("ID of the job"),
			),
			mcp.WithString("notes",
				mcp.Description("Optional notes when starting work"),
			),
		),
		mcp.NewTool("end_time_tracking",
			mcp.WithDescription("End time tracking for a time entry"),
			mcp.WithString("timeEntryId",
				mcp.Required(),
				mcp.Description("ID of the time entry"),
			),
			mcp.WithNumber("breakMinutes",
				mcp.Description("Break time in minutes (optional)"),
			),
			mcp.WithString("notes",
				mcp.Description("Additional notes (optional)"),
			),
		),
		mcp.NewTool("get_time_entries",
			mcp.WithDescription("Get time entries for a technician or job"),
			mcp.WithString("technicianId",
				mcp.Description("ID of the technician (optional)"),
			),
			mcp.WithString("jobId",
				mcp.Description("ID of the job (optional)"),
			),
			mcp.WithString("date",
				mcp.Description("Date in YYYY-MM-DD format (optional, technician-scoped only)"),
			),
		),
		mcp.NewTool("create_job",
			mcp.WithDescription("Create a new job"),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Job title"),
			),
			mcp.WithString("description",
				mcp.Required(),
				mcp.Description("Job description"),
			),
			mcp.WithString("customerName",
				mcp.Required(),
				mcp.Description("Customer name"),
			),
			mcp.WithString("customerAddress",
				mcp.Required(),
				mcp.Description("Customer address"),
			),
			mcp.WithString("customerPhone",
				mcp.Required(),
				mcp.Description("Customer phone"),
			),
			mcp.WithString("assignedTechnician",
				mcp.Required(),
				mcp.Description("ID of assigned technician"),
			),
			mcp.WithString("scheduledStart",
				mcp.Required(),
				mcp.Description("Scheduled start time (ISO format)"),
			),
			mcp.WithString("scheduledEnd",
				mcp.Required(),
				mcp.Description("Scheduled end time (ISO format)"),
			),
			mcp.WithString("priority",
				mcp.Description("Job priority (optional, defaults to medium)"),
				mcp.Enum("low", "medium", "high", "urgent"),
			),
		),
		mcp.NewTool("get_jobs",
			mcp.WithDescription("Get all jobs or jobs for a specific technician"),
			mcp.WithString("technicianId",
				mcp.Description("ID of the technician (optional)"),
			),
			mcp.WithString("status",
				mcp.Description("Filter by status (optional)"),
				mcp.Enum("scheduled", "in_progress", "completed", "cancelled"),
			),
		),
		mcp.NewTool("get_job_details",
			mcp.WithDescription("Get detailed information about a specific job"),
			mcp.WithString("jobId",
				mcp.Required(),
				mcp.Description("ID of the job"),
			),
		),
		mcp.NewTool("update_technician_location",
			mcp.WithDescription("Update technician's current location"),
			mcp.WithString("technicianId",
				mcp.Required(),
				mcp.Description("ID of the technician"),
			),
			mcp.WithNumber("latitude",
				mcp.Required(),
				mcp.Description("Latitude coordinate"),
			),
			mcp.WithNumber("longitude",
				mcp.Required(),
				mcp.Description("Longitude coordinate"),
			),
			mcp.WithString("address",
				mcp.Required(),
				mcp.Description("Human-readable address"),
			),
		),
	}
}
