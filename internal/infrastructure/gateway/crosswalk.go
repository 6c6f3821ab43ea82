package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

func (c *Client) ListCrosswalks(ctx context.Context, rfpID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/crosswalk/"+rfpID, nil, "crosswalk.list")
}

func (c *Client) GenerateCrosswalks(ctx context.Context, rfpID string) (json.RawMessage, error) {
	body, err := c.request(ctx, http.MethodPost, "/api/crosswalk/"+rfpID+"/generate", nil, "application/json", nil, "crosswalk.generate")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) UpdateCrosswalk(ctx context.Context, mapping domain.CrosswalkMapping) (payload.Record, error) {
	fields := map[string]any{
		"risk_level":      mapping.RiskLevel,
		"alignment_score": mapping.AlignmentScore,
		"notes":           mapping.Notes,
		"status":          mapping.Status,
	}
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodPut, "/api/crosswalk/mappings/"+mapping.ID, nil, fields, &record, "crosswalk.update"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) ApproveCrosswalk(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/crosswalk/mappings/"+id+"/approve", nil, nil, nil, "crosswalk.approve")
}
