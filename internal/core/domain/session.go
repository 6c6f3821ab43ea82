package domain

import "time"

// DataSource tags which dataset a view presents after fallback resolution.
type DataSource string

const (
	SourceRemote   DataSource = "remote"
	SourceFallback DataSource = "fallback"
)

type NotificationLevel string

const (
	NotifyInfo  NotificationLevel = "info"
	NotifyWarn  NotificationLevel = "warn"
	NotifyError NotificationLevel = "error"
)

// Notification is a non-blocking user-visible message. No failure is fatal;
// the dashboard stays interactive and surfaces these instead.
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

// Session holds the authenticated user's bearer token for the lifetime of
// the client process. A 401 from any endpoint tears it down.
type Session struct {
	Token           string `json:"-"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"is_authenticated"`
	RedirectToLogin bool   `json:"redirect_to_login"`
}
