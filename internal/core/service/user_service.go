package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

// UserService implements registration, login credential checks and removal.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// Register validates input and stores a new user with a lower-cased email,
// a bcrypt password digest and a fresh session token.
func (s *UserService) Register(ctx context.Context, input domain.NewUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(input.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrEmailTaken
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := digest(input.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:           input.Name,
		Email:          email,
		PasswordDigest: hash,
		SessionToken:   newToken(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Destroy removes a user along with everything it owns.
func (s *UserService) Destroy(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user destroyed")
	return nil
}

// RevokeSessions rotates the user's session token so every existing session
// cookie stops resolving. Remember-me cookies are left alone.
func (s *UserService) RevokeSessions(ctx context.Context, user *domain.User) (*domain.User, error) {
	token := newToken()
	if err := s.repo.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("revoke sessions: %w", err)
	}
	updated := *user
	updated.SessionToken = token
	s.logger.Info().Str("user_id", user.ID).Msg("sessions revoked")
	return &updated, nil
}
