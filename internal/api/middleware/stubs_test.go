package middleware

import (
	"context"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/api/websession"
	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/service"
)

type stubUsers struct {
	users map[string]*domain.User
}

func (r *stubUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }

func (r *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUsers) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUsers) FindByIDs(context.Context, []string) ([]*domain.User, error) { return nil, nil }
func (r *stubUsers) UpdateRememberDigest(context.Context, string, string) error  { return nil }
func (r *stubUsers) UpdateSessionToken(context.Context, string, string) error    { return nil }
func (r *stubUsers) Delete(context.Context, string) error                        { return nil }

type noSigner struct{}

func (noSigner) Sign(v string) (string, error)   { return v, nil }
func (noSigner) Verify(v string) (string, error) { return v, nil }

// withSession attaches a request session to c. When user is non-nil the
// session context already names it.
func withSession(c echo.Context, user *domain.User) *websession.Values {
	users := &stubUsers{users: map[string]*domain.User{}}
	values := websession.NewValues(nil)
	if user != nil {
		users.users[user.ID] = user
		values.Set(service.SessionUserIDKey, user.ID)
		values.Set(service.SessionTokenKey, user.SessionToken)
	}
	manager := service.NewSessionManager(users, noSigner{}, nil, 4, zerolog.Nop())
	rs := manager.Begin(values, websession.NewCookieJar(c, false), service.RequestMeta{})
	websession.Attach(c, rs)
	return values
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
