package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

const (
	defaultFeedLimit = 30
	maxFeedLimit     = 100
)

// FeedService composes a user's feed: their own microposts plus those of
// every user they follow, most recent first.
type FeedService struct {
	posts         ports.MicropostRepository
	relationships ports.RelationshipRepository
	logger        zerolog.Logger
}

func NewFeedService(posts ports.MicropostRepository, relationships ports.RelationshipRepository, logger zerolog.Logger) *FeedService {
	return &FeedService{posts: posts, relationships: relationships, logger: logger}
}

// Feed returns one page of user's feed. The owner set is resolved once and
// handed to the repository as a single filter.
func (s *FeedService) Feed(ctx context.Context, user *domain.User, page ports.PageFilter) (*ports.FeedResult, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	page = normalizePage(page)

	following, err := s.relationships.FollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("feed: following ids: %w", err)
	}
	owners := feedOwners(user.ID, following)

	items, total, err := s.posts.FindByOwners(ctx, owners, page)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}

	totalPages := int((total + int64(page.Limit) - 1) / int64(page.Limit))
	return &ports.FeedResult{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}, nil
}

// feedOwners returns {self} ∪ following without duplicates.
func feedOwners(self string, following []string) []string {
	owners := make([]string, 0, len(following)+1)
	owners = append(owners, self)
	seen := map[string]struct{}{self: {}}
	for _, id := range following {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		owners = append(owners, id)
	}
	return owners
}

func normalizePage(p ports.PageFilter) ports.PageFilter {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.Limit <= 0:
		p.Limit = defaultFeedLimit
	case p.Limit > maxFeedLimit:
		p.Limit = maxFeedLimit
	}
	return p
}
