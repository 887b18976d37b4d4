package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification severities, matching the dashboard's toast variants.
const (
	SeverityInfo        = "info"
	SeveritySuccess     = "success"
	SeverityDestructive = "destructive"
)

// Notification is the human-readable record emitted after every mutation.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}
