package usecase

import (
	"context"
	"log/slog"

	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/state"
)

// Sessions drives login state. Logout always clears local state, even if
// the backend call fails; the token is gone either way.
type Sessions struct {
	gateway ports.AuthGateway
	store   *state.Store
	logger  *slog.Logger
}

func NewSessions(gateway ports.AuthGateway, store *state.Store, logger *slog.Logger) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{gateway: gateway, store: store, logger: logger}
}

func (s *Sessions) Login(ctx context.Context, email, password string) error {
	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.store.SetSession(session)
	s.logger.Info("session_started", "email", session.Email)
	return nil
}

// Restore validates a token installed before startup and rebuilds the
// session from the profile endpoint.
func (s *Sessions) Restore(ctx context.Context) error {
	session, err := s.gateway.Me(ctx)
	if err != nil {
		return err
	}
	s.store.SetSession(session)
	s.logger.Info("session_restored", "email", session.Email)
	return nil
}

func (s *Sessions) Logout(ctx context.Context) {
	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.Warn("logout_request_failed", "error", err)
	}
	s.store.ClearAll()
	s.store.ClearSession()
	s.logger.Info("session_ended")
}
