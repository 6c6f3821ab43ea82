package gateway

import (
	"context"
	"net/http"

	"github.com/grantops/grantdesk/internal/core/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	payload := map[string]string{"email": email, "password": password}

	var tokens tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", nil, payload, &tokens, "auth.login"); err != nil {
		return domain.Session{}, err
	}

	c.SetToken(tokens.AccessToken)
	return domain.Session{
		Token:           tokens.AccessToken,
		Email:           email,
		IsAuthenticated: true,
	}, nil
}

// Me validates the current token and returns the session it belongs to.
func (c *Client) Me(ctx context.Context) (domain.Session, error) {
	var profile struct {
		Email string `json:"email"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, nil, &profile, "auth.me"); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token:           c.currentToken(),
		Email:           profile.Email,
		IsAuthenticated: true,
	}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil, "auth.logout")
	c.SetToken("")
	return err
}
