package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

type MicropostService struct {
	repo   ports.MicropostRepository
	logger zerolog.Logger
}

func NewMicropostService(repo ports.MicropostRepository, logger zerolog.Logger) *MicropostService {
	return &MicropostService{repo: repo, logger: logger}
}

// Create validates content and stores it as a micropost owned by user.
func (s *MicropostService) Create(ctx context.Context, user *domain.User, content string) (*domain.Micropost, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	in := domain.NewMicropostInput{UserID: user.ID, Content: content}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.Create(ctx, &domain.Micropost{
		UserID:    user.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create micropost")
		return nil, err
	}
	return post, nil
}

// Delete removes a micropost. Only its owner may delete it.
func (s *MicropostService) Delete(ctx context.Context, user *domain.User, id string) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != user.ID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Count returns how many microposts userID owns.
func (s *MicropostService) Count(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountByUser(ctx, userID)
}
