package websession

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/service"
	"github.com/rimonomega/sampleapp/internal/infrastructure/cookiesign"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type memBackend struct {
	sessions  map[string]map[string]string
	destroyed []string
	touched   []string
}

func newMemBackend() *memBackend {
	return &memBackend{sessions: make(map[string]map[string]string)}
}

func (b *memBackend) Load(_ context.Context, id string) (map[string]string, error) {
	return b.sessions[id], nil
}

func (b *memBackend) Save(_ context.Context, id string, values map[string]string) error {
	b.sessions[id] = values
	return nil
}

func (b *memBackend) Touch(_ context.Context, id string) error {
	b.touched = append(b.touched, id)
	return nil
}

func (b *memBackend) Destroy(_ context.Context, id string) error {
	delete(b.sessions, id)
	b.destroyed = append(b.destroyed, id)
	return nil
}

type memUsers struct {
	users map[string]*domain.User
}

func (r *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUsers) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByIDs(_ context.Context, _ []string) ([]*domain.User, error) {
	return nil, nil
}

func (r *memUsers) UpdateRememberDigest(_ context.Context, id, digest string) error {
	r.users[id].RememberDigest = digest
	return nil
}

func (r *memUsers) UpdateSessionToken(_ context.Context, id, token string) error {
	r.users[id].SessionToken = token
	return nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fixture struct {
	e       *echo.Echo
	backend *memBackend
	user    *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	signer, err := cookiesign.New("test-secret", "sampleapp")
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Name: "Michael Example", Email: "michael@example.com", SessionToken: "tok-1"}
	users := &memUsers{users: map[string]*domain.User{user.ID: user}}
	manager := service.NewSessionManager(users, signer, nil, 4, zerolog.Nop())

	f := &fixture{e: echo.New(), backend: newMemBackend(), user: user}
	f.e.Use(Middleware(f.backend, manager, Options{Logger: zerolog.Nop()}))

	f.e.POST("/login", func(c echo.Context) error {
		rs := FromContext(c)
		rs.LogIn(user)
		if c.QueryParam("remember") == "1" {
			if err := rs.Remember(c.Request().Context(), user); err != nil {
				return err
			}
		}
		return c.NoContent(http.StatusNoContent)
	})
	f.e.GET("/me", func(c echo.Context) error {
		current, err := FromContext(c).CurrentUser(c.Request().Context())
		if err != nil {
			return err
		}
		if current == nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.String(http.StatusOK, current.ID)
	})
	f.e.DELETE("/logout", func(c echo.Context) error {
		if err := FromContext(c).LogOut(c.Request().Context()); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return f
}

func (f *fixture) do(method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			found = ck
		}
	}
	return found
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestMiddleware_AnonymousRequestWritesNothing(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/me")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, responseCookie(rec, CookieName))
	assert.Empty(t, f.backend.sessions)
}

func TestMiddleware_LoginPersistsSession(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login")
	require.Equal(t, http.StatusNoContent, rec.Code)

	sessionCookie := responseCookie(rec, CookieName)
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	stored := f.backend.sessions[sessionCookie.Value]
	assert.Equal(t, "u1", stored[service.SessionUserIDKey])
	assert.Equal(t, "tok-1", stored[service.SessionTokenKey])

	rec = f.do(http.MethodGet, "/me", sessionCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestMiddleware_RememberCookiesEstablishSession(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login?remember=1")
	require.Equal(t, http.StatusNoContent, rec.Code)

	idCookie := responseCookie(rec, service.RememberUserIDCookie)
	tokenCookie := responseCookie(rec, service.RememberTokenCookie)
	require.NotNil(t, idCookie)
	require.NotNil(t, tokenCookie)
	assert.Greater(t, idCookie.MaxAge, 0)
	assert.NotEqual(t, "u1", idCookie.Value, "user id must travel signed")

	// A new browser session: only the remember cookies survive.
	rec = f.do(http.MethodGet, "/me", idCookie, tokenCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	sessionCookie := responseCookie(rec, CookieName)
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "u1", f.backend.sessions[sessionCookie.Value][service.SessionUserIDKey])
}

func TestMiddleware_LogoutDestroysSessionAndCookies(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login?remember=1")
	sessionCookie := responseCookie(rec, CookieName)
	idCookie := responseCookie(rec, service.RememberUserIDCookie)
	tokenCookie := responseCookie(rec, service.RememberTokenCookie)
	require.NotNil(t, sessionCookie)

	rec = f.do(http.MethodDelete, "/logout", sessionCookie, idCookie, tokenCookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Contains(t, f.backend.destroyed, sessionCookie.Value)
	assert.NotContains(t, f.backend.sessions, sessionCookie.Value)
	assert.Empty(t, f.user.RememberDigest)

	expired := responseCookie(rec, service.RememberTokenCookie)
	require.NotNil(t, expired)
	assert.Less(t, expired.MaxAge, 0)

	// The old session id no longer resolves.
	rec = f.do(http.MethodGet, "/me", sessionCookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_UnknownSessionIDIsNotAdopted(t *testing.T) {
	f := newFixture(t)
	planted := &http.Cookie{Name: CookieName, Value: "attacker-chosen-id"}

	rec := f.do(http.MethodPost, "/login", planted)
	require.Equal(t, http.StatusNoContent, rec.Code)

	sessionCookie := responseCookie(rec, CookieName)
	require.NotNil(t, sessionCookie)
	assert.NotEqual(t, planted.Value, sessionCookie.Value)
	assert.NotContains(t, f.backend.sessions, planted.Value)

	rec = f.do(http.MethodGet, "/me", planted)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_LoginRotatesExistingSessionID(t *testing.T) {
	f := newFixture(t)
	// An anonymous session that already exists server-side, for example one
	// holding a forwarding url.
	f.backend.sessions["pre-login"] = map[string]string{service.SessionForwardingKey: "/feed"}
	before := &http.Cookie{Name: CookieName, Value: "pre-login"}

	rec := f.do(http.MethodPost, "/login", before)
	require.Equal(t, http.StatusNoContent, rec.Code)

	sessionCookie := responseCookie(rec, CookieName)
	require.NotNil(t, sessionCookie)
	assert.NotEqual(t, "pre-login", sessionCookie.Value)
	assert.Contains(t, f.backend.destroyed, "pre-login")
	assert.NotContains(t, f.backend.sessions, "pre-login")

	stored := f.backend.sessions[sessionCookie.Value]
	assert.Equal(t, "u1", stored[service.SessionUserIDKey])
	assert.Equal(t, "/feed", stored[service.SessionForwardingKey], "values survive the rotation")

	rec = f.do(http.MethodGet, "/me", before)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ReadOnlyRequestTouchesSession(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login")
	sessionCookie := responseCookie(rec, CookieName)
	require.NotNil(t, sessionCookie)
	assert.Empty(t, f.backend.touched)

	rec = f.do(http.MethodGet, "/me", sessionCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{sessionCookie.Value}, f.backend.touched)
	assert.Nil(t, responseCookie(rec, CookieName), "an unchanged session is not rewritten")
}

func TestCookieJar_ReadsOwnWrites(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "remember_token", Value: "from-client"})
	c := e.NewContext(req, httptest.NewRecorder())

	jar := NewCookieJar(c, true)

	v, ok := jar.Get("remember_token")
	assert.True(t, ok)
	assert.Equal(t, "from-client", v)

	jar.Delete("remember_token")
	_, ok = jar.Get("remember_token")
	assert.False(t, ok)

	jar.SetPermanent("remember_token", "fresh")
	v, ok = jar.Get("remember_token")
	assert.True(t, ok)
	assert.Equal(t, "fresh", v)
}

func TestValues_TracksChanges(t *testing.T) {
	v := NewValues(map[string]string{"user_id": "u1"})
	assert.False(t, v.dirty)

	v.Set("user_id", "u1")
	assert.False(t, v.dirty, "rewriting the same value is not a change")

	v.Delete("missing")
	assert.False(t, v.dirty)

	v.Set("forwarding_url", "/feed")
	assert.True(t, v.dirty)

	v.Renew()
	assert.True(t, v.renewed)
	val, ok := v.Get("forwarding_url")
	assert.True(t, ok)
	assert.Equal(t, "/feed", val)

	v.Clear()
	assert.True(t, v.cleared)
	_, ok = v.Get("user_id")
	assert.False(t, ok)
}
