package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

func (c *Client) ListSections(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/boilerplate/sections", nil, "boilerplate.list")
}

func (c *Client) SearchSections(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{"q": {query}}
	return c.getRaw(ctx, "/api/boilerplate/sections/search", params, "boilerplate.search")
}

func (c *Client) CreateSection(ctx context.Context, section domain.BoilerplateSection) (payload.Record, error) {
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodPost, "/api/boilerplate/sections", nil, sectionPayload(section), &record, "boilerplate.create"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) UpdateSection(ctx context.Context, section domain.BoilerplateSection) (payload.Record, error) {
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodPut, "/api/boilerplate/sections/"+section.ID, nil, sectionPayload(section), &record, "boilerplate.update"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/boilerplate/sections/"+id, nil, nil, nil, "boilerplate.delete")
}

func sectionPayload(section domain.BoilerplateSection) map[string]any {
	return map[string]any{
		"section_title": section.Title,
		"category":      section.Category,
		"content":       section.Content,
		"tags":          section.Tags,
		"program_area":  section.ProgramArea,
		"evidence_type": section.Evidence,
	}
}
