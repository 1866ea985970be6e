package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"fieldops/internal/models"
	"fieldops/internal/service"
)

type getTechniciansHandler struct {
	svc *service.TechnicianService
}

func (h *getTechniciansHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	technicians, err := h.svc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return jsonText(technicians)
}

type getTechnicianScheduleHandler struct {
	svc *service.TechnicianService
}

func (h *getTechnicianScheduleHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	technicianID, err := RequireString(args, "technicianId")
	if err != nil {
		return nil, err
	}
	date := OptionalString(args, "date")

	schedule, err := h.svc.GetSchedule(ctx, technicianID, date)
	if err != nil {
		return nil, err
	}
	return jsonText(schedule)
}

type updateTechnicianLocationHandler struct {
	svc *service.TechnicianService
}

func (h *updateTechnicianLocationHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	technicianID, err := RequireString(args, "technicianId")
	if err != nil {
		return nil, err
	}
	latitude, err := RequireNumber(args, "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := RequireNumber(args, "longitude")
	if err != nil {
		return nil, err
	}
	address, err := RequireString(args, "address")
	if err != nil {
		return nil, err
	}

	loc := models.Location{Lat: latitude, Lng: longitude, Address: address}
	if err := h.svc.UpdateLocation(ctx, technicianID, loc); err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Location updated for technician %s", technicianID)), nil
}
