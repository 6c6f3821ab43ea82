package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grantops/grantdesk/internal/core/payload"
)

func (c *Client) Summary(ctx context.Context) (payload.Record, error) {
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/summary", nil, nil, &record, "dashboard.summary"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) FunderBreakdown(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/dashboard/summary/funder-breakdown", nil, "dashboard.funders")
}

func (c *Client) ActivityFeed(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/dashboard/activity", nil, "dashboard.activity")
}
