package ports

import (
	"context"

	"github.com/rimonomega/sampleapp/internal/core/domain"
)

// AuthEventRepository persists the authentication audit trail.
type AuthEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}

// AuthEventSink accepts audit events for asynchronous persistence.
type AuthEventSink interface {
	Enqueue(event domain.AuthEvent)
}
