// Package notify turns classified failures into the notification feed
// the dashboard renders. Notifications never block; they are pushed to
// the store, logged, and counted.
package notify

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/state"
)

// Recorder counts raised notifications. Nil disables counting.
type Recorder interface {
	RecordNotification(level string)
}

type Center struct {
	store    *state.Store
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
}

func NewCenter(store *state.Store, logger *slog.Logger, recorder Recorder) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{store: store, logger: logger, recorder: recorder, now: time.Now}
}

func (c *Center) Notify(level domain.NotificationLevel, message string) {
	notification := domain.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: c.now(),
	}
	c.store.PushNotification(notification)

	switch level {
	case domain.NotifyError:
		c.logger.Error("notification", "message", message)
	case domain.NotifyWarn:
		c.logger.Warn("notification", "message", message)
	default:
		c.logger.Info("notification", "message", message)
	}

	if c.recorder != nil {
		c.recorder.RecordNotification(string(level))
	}
}
