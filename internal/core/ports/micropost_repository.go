package ports

import (
	"context"

	"github.com/rimonomega/sampleapp/internal/core/domain"
)

// PageFilter selects one page of a reverse-chronological listing.
type PageFilter struct {
	Page  int // 1-based
	Limit int
}

// Skip returns the number of rows before the page starts.
func (p PageFilter) Skip() int64 {
	if p.Page < 1 {
		return 0
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// MicropostRepository defines persistence operations for microposts.
type MicropostRepository interface {
	Create(ctx context.Context, post *domain.Micropost) (*domain.Micropost, error)
	FindByID(ctx context.Context, id string) (*domain.Micropost, error)
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	// FindByOwners returns microposts whose owner is in ownerIDs, most recent
	// first, together with the total number of matches.
	FindByOwners(ctx context.Context, ownerIDs []string, page PageFilter) ([]*domain.Micropost, int64, error)
}
