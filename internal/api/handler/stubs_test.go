package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/api/websession"
	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
	"github.com/rimonomega/sampleapp/internal/core/service"
)

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubUserService struct {
	registerFn     func(ctx context.Context, in domain.NewUserInput) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	getFn          func(ctx context.Context, id string) (*domain.User, error)
	destroyFn      func(ctx context.Context, id string) error
	revokeFn       func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, in domain.NewUserInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Destroy(ctx context.Context, id string) error {
	return s.destroyFn(ctx, id)
}

func (s *stubUserService) RevokeSessions(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.revokeFn(ctx, user)
}

type stubRelationshipService struct {
	followFn      func(ctx context.Context, follower *domain.User, followedID string) (bool, error)
	unfollowFn    func(ctx context.Context, follower *domain.User, followedID string) error
	isFollowingFn func(ctx context.Context, followerID, followedID string) (bool, error)
	followersFn   func(ctx context.Context, userID string) ([]*domain.User, error)
	followingFn   func(ctx context.Context, userID string) ([]*domain.User, error)
}

func (s *stubRelationshipService) Follow(ctx context.Context, follower *domain.User, followedID string) (bool, error) {
	return s.followFn(ctx, follower, followedID)
}

func (s *stubRelationshipService) Unfollow(ctx context.Context, follower *domain.User, followedID string) error {
	return s.unfollowFn(ctx, follower, followedID)
}

func (s *stubRelationshipService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}

func (s *stubRelationshipService) Followers(ctx context.Context, userID string) ([]*domain.User, error) {
	return s.followersFn(ctx, userID)
}

func (s *stubRelationshipService) Following(ctx context.Context, userID string) ([]*domain.User, error) {
	return s.followingFn(ctx, userID)
}

type stubMicropostService struct {
	createFn func(ctx context.Context, user *domain.User, content string) (*domain.Micropost, error)
	deleteFn func(ctx context.Context, user *domain.User, id string) error
	countFn  func(ctx context.Context, userID string) (int64, error)
}

func (s *stubMicropostService) Create(ctx context.Context, user *domain.User, content string) (*domain.Micropost, error) {
	return s.createFn(ctx, user, content)
}

func (s *stubMicropostService) Delete(ctx context.Context, user *domain.User, id string) error {
	return s.deleteFn(ctx, user, id)
}

func (s *stubMicropostService) Count(ctx context.Context, userID string) (int64, error) {
	return s.countFn(ctx, userID)
}

type stubFeedService struct {
	feedFn func(ctx context.Context, user *domain.User, page ports.PageFilter) (*ports.FeedResult, error)
}

func (s *stubFeedService) Feed(ctx context.Context, user *domain.User, page ports.PageFilter) (*ports.FeedResult, error) {
	return s.feedFn(ctx, user, page)
}

// ---------------------------------------------------------------------------
// Session plumbing
// ---------------------------------------------------------------------------

// userStore backs the session manager; it only needs to resolve ids and keep
// remember digests.
type userStore struct {
	users map[string]*domain.User
}

func (r *userStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *userStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *userStore) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *userStore) FindByIDs(context.Context, []string) ([]*domain.User, error) { return nil, nil }

func (r *userStore) UpdateRememberDigest(_ context.Context, id, digest string) error {
	if u, ok := r.users[id]; ok {
		u.RememberDigest = digest
	}
	return nil
}

func (r *userStore) UpdateSessionToken(_ context.Context, id, token string) error {
	if u, ok := r.users[id]; ok {
		u.SessionToken = token
	}
	return nil
}

func (r *userStore) Delete(context.Context, string) error { return nil }

type plainSigner struct{}

func (plainSigner) Sign(v string) (string, error)   { return "signed." + v, nil }
func (plainSigner) Verify(v string) (string, error) { return strings.TrimPrefix(v, "signed."), nil }

type testRequest struct {
	c      echo.Context
	rec    *httptest.ResponseRecorder
	values *websession.Values
	users  *userStore
}

// newRequest builds an echo context with a request session attached. When
// loggedIn is non-nil the session already names that user.
func newRequest(method, target string, body io.Reader, loggedIn *domain.User) *testRequest {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	users := &userStore{users: make(map[string]*domain.User)}
	values := websession.NewValues(nil)
	if loggedIn != nil {
		users.users[loggedIn.ID] = loggedIn
		values.Set(service.SessionUserIDKey, loggedIn.ID)
		values.Set(service.SessionTokenKey, loggedIn.SessionToken)
	}
	manager := service.NewSessionManager(users, plainSigner{}, nil, 4, zerolog.Nop())
	websession.Attach(c, manager.Begin(values, websession.NewCookieJar(c, false), service.RequestMeta{}))

	return &testRequest{c: c, rec: rec, values: values, users: users}
}

func michael() *domain.User {
	return &domain.User{ID: "u1", Name: "Michael Example", Email: "michael@example.com", SessionToken: "tok-1"}
}
