package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

// RelationshipService manages follow edges between users.
type RelationshipService struct {
	relationships ports.RelationshipRepository
	users         ports.UserRepository
	logger        zerolog.Logger
}

func NewRelationshipService(relationships ports.RelationshipRepository, users ports.UserRepository, logger zerolog.Logger) *RelationshipService {
	return &RelationshipService{relationships: relationships, users: users, logger: logger}
}

// Follow makes follower follow the user with followedID and reports whether a
// new edge was created. Following oneself is silently ignored; following an
// already-followed user is a no-op.
func (s *RelationshipService) Follow(ctx context.Context, follower *domain.User, followedID string) (bool, error) {
	if follower == nil || follower.ID == followedID {
		return false, nil
	}
	if _, err := s.users.FindByID(ctx, followedID); err != nil {
		return false, err
	}
	created, err := s.relationships.Create(ctx, follower.ID, followedID)
	if err != nil {
		return false, fmt.Errorf("follow: %w", err)
	}
	if created {
		s.logger.Debug().Str("follower_id", follower.ID).Str("followed_id", followedID).Msg("follow")
	}
	return created, nil
}

// Unfollow removes the edge follower → followedID if present.
func (s *RelationshipService) Unfollow(ctx context.Context, follower *domain.User, followedID string) error {
	if follower == nil {
		return nil
	}
	if err := s.relationships.Delete(ctx, follower.ID, followedID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	s.logger.Debug().Str("follower_id", follower.ID).Str("followed_id", followedID).Msg("unfollow")
	return nil
}

func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	if followerID == followedID {
		return false, nil
	}
	return s.relationships.Exists(ctx, followerID, followedID)
}

// Followers returns the users following userID.
func (s *RelationshipService) Followers(ctx context.Context, userID string) ([]*domain.User, error) {
	ids, err := s.relationships.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followers: %w", err)
	}
	return s.users.FindByIDs(ctx, ids)
}

// Following returns the users userID follows.
func (s *RelationshipService) Following(ctx context.Context, userID string) ([]*domain.User, error) {
	ids, err := s.relationships.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("following: %w", err)
	}
	return s.users.FindByIDs(ctx, ids)
}
