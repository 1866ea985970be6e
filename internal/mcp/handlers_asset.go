package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"fieldops/internal/models"
	"fieldops/internal/service"
)

type getAvailableAssetsHandler struct {
	svc *service.AssetService
}

func (h *getAvailableAssetsHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	// Type filter is passed through unvalidated; unknown types match nothing.
	var typ *models.AssetType
	if t := OptionalString(args, "type"); t != nil {
		at := models.AssetType(*t)
		typ = &at
	}

	assets, err := h.svc.FindAvailable(ctx, typ)
	if err != nil {
		return nil, err
	}
	return jsonText(assets)
}

type assignAssetHandler struct {
	svc *service.AssetService
}

func (h *assignAssetHandler) Handle(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	assetID, err := RequireString(args, "assetId")
	if err != nil {
		return nil, err
	}
	technicianID, err := RequireString(args, "technicianId")
	if err != nil {
		return nil, err
	}

	if err := h.svc.AssignToTechnician(ctx, assetID, technicianID); err != nil {
		return nil, err
	}
	return successText(fmt.Sprintf("Asset %s assigned to technician %s", assetID, technicianID)), nil
}
