// Package gateway wraps every backend capability behind typed operations.
// It is the only layer that classifies transport failures and raises the
// resulting user-visible notifications; callers treat a failed call as
// "use fallback", never as something to re-throw at the UI.
package gateway

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/infrastructure/resilience"
)

// Observer records per-operation request outcomes. Nil disables metrics.
type Observer interface {
	RecordRequest(operation, outcome string, duration time.Duration)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	exec       *resilience.Executor
	notifier   ports.Notifier
	sessions   ports.SessionController
	observer   Observer

	mu    sync.Mutex
	token string
}

func New(
	baseURL string,
	timeout time.Duration,
	exec *resilience.Executor,
	notifier ports.Notifier,
	sessions ports.SessionController,
	observer Observer,
) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		exec:       exec,
		notifier:   notifier,
		sessions:   sessions,
		observer:   observer,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}
