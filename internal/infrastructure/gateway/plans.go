package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

func (c *Client) ListPlans(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/plans", nil, "plans.list")
}

func (c *Client) GeneratePlan(ctx context.Context, rfpID string) (payload.Record, error) {
	body := map[string]string{"rfp_id": rfpID}
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodPost, "/api/plans/generate", nil, body, &record, "plans.generate"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) UpdatePlan(ctx context.Context, plan domain.Plan) (payload.Record, error) {
	fields := map[string]any{
		"title":  plan.Title,
		"status": plan.Status,
	}
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodPut, "/api/plans/"+plan.ID, nil, fields, &record, "plans.update"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/plans/"+id, nil, nil, nil, "plans.delete")
}
