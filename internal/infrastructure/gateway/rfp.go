package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

func (c *Client) ListRFPs(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/rfp", nil, "rfp.list")
}

func (c *Client) GetRFP(ctx context.Context, id string) (payload.Record, error) {
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodGet, "/api/rfp/"+id, nil, nil, &record, "rfp.get"); err != nil {
		return nil, err
	}
	return record, nil
}

// UploadRFP sends the document as a multipart form with a `file` field;
// the optional metadata travels as query parameters.
func (c *Client) UploadRFP(ctx context.Context, filename string, file io.Reader, meta domain.RFPUploadMeta) (payload.Record, error) {
	const operation = "rfp.upload"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build %s form: %w", operation, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read %s file: %w", operation, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish %s form: %w", operation, err)
	}

	query := url.Values{}
	if meta.Title != "" {
		query.Set("title", meta.Title)
	}
	if meta.FunderName != "" {
		query.Set("funder_name", meta.FunderName)
	}
	if meta.Deadline != nil {
		query.Set("deadline", meta.Deadline.Format(time.RFC3339))
	}
	if meta.FundingAmount > 0 {
		query.Set("funding_amount", strconv.FormatFloat(meta.FundingAmount, 'f', -1, 64))
	}

	body, err := c.request(ctx, http.MethodPost, "/api/rfp/upload", query, writer.FormDataContentType(), buf.Bytes(), operation)
	if err != nil {
		return nil, err
	}
	record, ok := payload.Object(body)
	if !ok {
		return nil, fmt.Errorf("decode %s response", operation)
	}
	return record, nil
}

func (c *Client) UpdateRFP(ctx context.Context, id string, fields map[string]any) (payload.Record, error) {
	var record payload.Record
	if err := c.doJSON(ctx, http.MethodPut, "/api/rfp/"+id, nil, fields, &record, "rfp.update"); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *Client) DeleteRFP(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/rfp/"+id, nil, nil, nil, "rfp.delete")
}

func (c *Client) ListRequirements(ctx context.Context, rfpID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/api/rfp/"+rfpID+"/requirements", nil, "rfp.requirements")
}
