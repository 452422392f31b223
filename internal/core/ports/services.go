package ports

import (
	"context"

	"github.com/rimonomega/sampleapp/internal/core/domain"
)

// UserService covers registration, password authentication and admin removal.
type UserService interface {
	Register(ctx context.Context, input domain.NewUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Destroy(ctx context.Context, id string) error
	RevokeSessions(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RelationshipService manages the follow graph.
type RelationshipService interface {
	// Follow reports whether a new edge was created.
	Follow(ctx context.Context, follower *domain.User, followedID string) (bool, error)
	Unfollow(ctx context.Context, follower *domain.User, followedID string) error
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]*domain.User, error)
	Following(ctx context.Context, userID string) ([]*domain.User, error)
}

// FeedResult is one page of a user's feed.
type FeedResult struct {
	Items      []*domain.Micropost
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// FeedService composes feeds.
type FeedService interface {
	Feed(ctx context.Context, user *domain.User, page PageFilter) (*FeedResult, error)
}

// MicropostService creates, deletes and counts microposts.
type MicropostService interface {
	Create(ctx context.Context, user *domain.User, content string) (*domain.Micropost, error)
	Delete(ctx context.Context, user *domain.User, id string) error
	Count(ctx context.Context, userID string) (int64, error)
}
