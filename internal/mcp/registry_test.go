package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"fieldops/internal/repo"
	"fieldops/internal/service"
)

// seededRegistry builds a registry over the seeded memory store.
func seededRegistry(t *testing.T) *Registry {
	t.Helper()
	st := repo.NewMemory().Store()
	if err := repo.Seed(context.Background(), st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewRegistry(service.New(st))
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("result = %+v, want exactly one content block", res)
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestCallUnknownTool(t *testing.T) {
	reg := seededRegistry(t)

	res := reg.Call(context.Background(), "summon_technician", nil)
	if !res.IsError {
		t.Fatal("want isError")
	}
	if got := resultText(t, res); got != "Error: Unknown tool: summon_technician" {
		t.Fatalf("text = %q", got)
	}
}

func TestCallMissingRequiredArgument(t *testing.T) {
	reg := seededRegistry(t)

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{"get_technician_schedule", map[string]any{}, "Error: Missing required argument: technicianId"},
		{"update_job_status", map[string]any{"jobId": "job001"}, "Error: Missing required argument: status"},
		{"add_work_notes", map[string]any{"notes": "done"}, "Error: Missing required argument: jobId"},
		{"assign_asset", map[string]any{"assetId": "asset001"}, "Error: Missing required argument: technicianId"},
		{"record_asset_usage", map[string]any{"jobId": "job001"}, "Error: Missing required argument: assetId"},
		{"start_time_tracking", map[string]any{"technicianId": "tech001"}, "Error: Missing required argument: jobId"},
		{"end_time_tracking", map[string]any{}, "Error: Missing required argument: timeEntryId"},
		{"create_job", map[string]any{"title": "AC repair"}, "Error: Missing required argument: description"},
		{"get_job_details", map[string]any{}, "Error: Missing required argument: jobId"},
		{"update_technician_location", map[string]any{"technicianId": "tech001", "longitude": -74.0, "address": "x"}, "Error: Missing required argument: latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			res := reg.Call(context.Background(), tt.tool, tt.args)
			if !res.IsError {
				t.Fatal("want isError")
			}
			if got := resultText(t, res); got != tt.want {
				t.Fatalf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallDomainErrorEnvelope(t *testing.T) {
	reg := seededRegistry(t)

	res := reg.Call(context.Background(), "get_job_details", map[string]any{"jobId": "job999"})
	if !res.IsError {
		t.Fatal("want isError")
	}
	if got := resultText(t, res); got != "Error: job not found" {
		t.Fatalf("text = %q", got)
	}
}

func TestDispatchUnknownToolType(t *testing.T) {
	reg := seededRegistry(t)

	_, err := reg.Dispatch(context.Background(), "nope", nil)
	if _, ok := err.(*UnknownToolError); !ok {
		t.Fatalf("error type = %T, want *UnknownToolError", err)
	}
}

func TestRegistryCoversToolDefinitions(t *testing.T) {
	reg := seededRegistry(t)
	registered := make(map[string]bool)
	for _, name := range reg.Names() {
		registered[name] = true
	}

	defs := toolDefinitions()
	if len(defs) != len(registered) {
		t.Fatalf("definitions = %d, registered = %d", len(defs), len(registered))
	}
	for _, def := range defs {
		if !registered[def.Name] {
			t.Fatalf("tool %s defined but not registered", def.Name)
		}
	}
}
