package repositories

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// Event is a notification emitted after a state change, for consumption by an
// external realtime channel. Delivery is best-effort.
type Event struct {
	Name      string         `json:"name"`
	ProjectID string         `json:"projectID"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// EventPublisher abstracts the outbound notification channel.
type EventPublisher interface {
	// Publish sends one event. Errors are reported but callers treat delivery
	// as best-effort.
	Publish(ctx context.Context, event Event) error
}

// SummaryCache is the read-through cache in front of the readiness summary row.
type SummaryCache interface {
	// GetSummary retrieves a cached summary; (nil, nil) means cache miss.
	GetSummary(ctx context.Context, projectID string) (*domain.ProjectReadiness, error)

	// SetSummary stores a summary under the project key.
	SetSummary(ctx context.Context, summary domain.ProjectReadiness) error

	// InvalidateSummary drops the cached summary for a project.
	InvalidateSummary(ctx context.Context, projectID string) error
}
