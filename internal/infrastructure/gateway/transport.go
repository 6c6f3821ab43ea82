package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/infrastructure/resilience"
)

const requestIDHeader = "X-Request-Id"

// StatusError carries the server-supplied message from a non-2xx
// response, used verbatim in the user-visible notification when present.
type StatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "gateway status error"
	}
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("%s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s status: %s: %s", e.Operation, e.Status, strings.TrimSpace(e.Message))
}

// request performs one backend call through the resilience executor and
// returns the response body. Classification happens here and nowhere
// else: transport failure → ErrNetwork, 401 → ErrUnauthorized, 404 →
// ErrNotFound, other 4xx → ErrClient, 5xx → ErrServer. Every call is
// at-most-once.
func (c *Client) request(
	ctx context.Context,
	method, path string,
	query url.Values,
	contentType string,
	body []byte,
	operation string,
) ([]byte, error) {
	var respBody []byte

	call := func(callCtx context.Context) error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(callCtx, method, c.requestURL(path, query), reader)
		if err != nil {
			return fmt.Errorf("create %s request: %w", operation, err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set(requestIDHeader, uuid.NewString())
		if token := c.currentToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return domain.WrapError(domain.ErrNetwork, operation, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return statusError(operation, resp)
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return domain.WrapError(domain.ErrNetwork, operation, err)
		}
		return nil
	}

	start := time.Now()
	err := c.exec.Execute(ctx, operation, call, classifyBackendError)
	if resilience.IsCircuitOpen(err) {
		err = domain.WrapError(domain.ErrNetwork, operation, err)
	}
	c.observe(operation, err, time.Since(start))
	if err != nil {
		c.react(err)
		return nil, err
	}
	return respBody, nil
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// getRaw fetches a list-shaped response without decoding it; envelope
// probing belongs to the resolver.
func (c *Client) getRaw(ctx context.Context, path string, query url.Values, operation string) (json.RawMessage, error) {
	body, err := c.request(ctx, http.MethodGet, path, query, "", nil, operation)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload any, out any, operation string) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", operation, err)
		}
	}
	respBody, err := c.request(ctx, method, path, query, "application/json", body, operation)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func statusError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	statusErr := &StatusError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Message:    serverMessage(body),
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		kind = domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		kind = domain.ErrNotFound
	case resp.StatusCode >= 500:
		kind = domain.ErrServer
	default:
		kind = domain.ErrClient
	}
	return domain.WrapError(kind, operation, statusErr)
}

// serverMessage extracts the backend's detail/message field, if any.
func serverMessage(body []byte) string {
	var decoded struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		if decoded.Detail != "" {
			return decoded.Detail
		}
		if decoded.Message != "" {
			return decoded.Message
		}
	}
	return ""
}

// react performs the adapter's side effects for a classified failure: one
// notification per failed call, plus session teardown on auth failures.
func (c *Client) react(err error) {
	var statusErr *StatusError
	message := ""
	if errors.As(err, &statusErr) {
		message = statusErr.Message
	}

	switch {
	case domain.IsKind(err, domain.ErrUnauthorized):
		c.SetToken("")
		if c.sessions != nil {
			c.sessions.ClearSession()
		}
		c.notify(domain.NotifyError, orDefault(message, "Your session has expired. Please sign in again."))
	case domain.IsKind(err, domain.ErrServer):
		c.notify(domain.NotifyError, orDefault(message, "The server hit an internal error. Please try again later."))
	case domain.IsKind(err, domain.ErrNotFound), domain.IsKind(err, domain.ErrClient):
		c.notify(domain.NotifyWarn, orDefault(message, "The request could not be completed."))
	case domain.IsKind(err, domain.ErrNetwork):
		c.notify(domain.NotifyWarn, "Cannot reach the server. Showing locally available data.")
	}
}

func (c *Client) notify(level domain.NotificationLevel, message string) {
	if c.notifier != nil {
		c.notifier.Notify(level, message)
	}
}

func (c *Client) observe(operation string, err error, duration time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.RecordRequest(operation, outcomeLabel(err), duration)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case domain.IsKind(err, domain.ErrUnauthorized):
		return "unauthorized"
	case domain.IsKind(err, domain.ErrServer):
		return "server_error"
	case domain.IsKind(err, domain.ErrNotFound), domain.IsKind(err, domain.ErrClient):
		return "client_error"
	case domain.IsKind(err, domain.ErrNetwork):
		return "network_error"
	default:
		return "error"
	}
}

// The breaker only counts failures the backend is responsible for;
// caller-side 4xx responses must not trip it.
func classifyBackendError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}
	record := domain.IsKind(err, domain.ErrNetwork) || domain.IsKind(err, domain.ErrServer)
	return resilience.ErrorClassification{RecordFailure: record}
}

func orDefault(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}
