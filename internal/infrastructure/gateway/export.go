package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
)

// Download fetches a server-rendered export blob. The format is
// negotiated via a query parameter and defaults to json.
func (c *Client) Download(ctx context.Context, resource, id, format string) (io.ReadCloser, error) {
	if format == "" {
		format = "json"
	}
	query := url.Values{"format": {format}}

	body, err := c.request(ctx, http.MethodGet, "/api/export/"+resource+"/"+id, query, "", nil, "export.download")
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}
