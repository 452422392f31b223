package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

// Session context keys and remember cookie names.
const (
	SessionUserIDKey     = "user_id"
	SessionTokenKey      = "session_token"
	SessionForwardingKey = "forwarding_url"
	RememberUserIDCookie = "user_id"
	RememberTokenCookie  = "remember_token"
)

// RequestMeta describes the client of the current request for the audit trail.
type RequestMeta struct {
	RemoteIP  string
	UserAgent string
}

// SessionManager resolves and mutates the acting identity of a request. It
// holds no per-request state itself; Begin hands out a RequestSession that
// does.
type SessionManager struct {
	users      ports.UserRepository
	signer     ports.CookieSigner
	audit      ports.AuthEventSink
	bcryptCost int
	logger     zerolog.Logger
}

// NewSessionManager wires the manager. audit may be nil.
func NewSessionManager(
	users ports.UserRepository,
	signer ports.CookieSigner,
	audit ports.AuthEventSink,
	bcryptCost int,
	logger zerolog.Logger,
) *SessionManager {
	return &SessionManager{
		users:      users,
		signer:     signer,
		audit:      audit,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Begin binds the manager to one request's session context and cookies.
func (m *SessionManager) Begin(session ports.SessionStore, cookies ports.CookieJar, meta RequestMeta) *RequestSession {
	return &RequestSession{
		m:       m,
		session: session,
		cookies: cookies,
		meta:    meta,
	}
}

// RequestSession is the per-request view of the session manager. The resolved
// identity is cached on it and it must not outlive or be shared beyond the
// request it was created for.
type RequestSession struct {
	m       *SessionManager
	session ports.SessionStore
	cookies ports.CookieJar
	meta    RequestMeta

	resolved bool
	current  *domain.User
}

// LogIn records user as the acting identity of this session.
func (rs *RequestSession) LogIn(user *domain.User) {
	rs.writeSession(user)
	rs.resolved, rs.current = true, user
	rs.record(user.ID, domain.AuthMethodPassword)
}

// RefreshSession rewrites the session token snapshot for user, for example
// after its session token was rotated, without recording a new login.
func (rs *RequestSession) RefreshSession(user *domain.User) {
	rs.writeSession(user)
	rs.resolved, rs.current = true, user
}

// writeSession binds user to a fresh session so an id known before the
// privilege change never carries the new identity.
func (rs *RequestSession) writeSession(user *domain.User) {
	rs.session.Renew()
	rs.session.Set(SessionUserIDKey, user.ID)
	rs.session.Set(SessionTokenKey, user.SessionToken)
}

// Remember issues a new remember token for user, persists its digest and
// hands the token to the client as a pair of permanent cookies.
func (rs *RequestSession) Remember(ctx context.Context, user *domain.User) error {
	token := newToken()
	hash, err := digest(token, rs.m.bcryptCost)
	if err != nil {
		return fmt.Errorf("remember: hash token: %w", err)
	}
	if err := rs.m.users.UpdateRememberDigest(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("remember: %w", err)
	}
	user.RememberDigest = hash

	signedID, err := rs.m.signer.Sign(user.ID)
	if err != nil {
		return fmt.Errorf("remember: sign user id: %w", err)
	}
	rs.cookies.SetPermanent(RememberUserIDCookie, signedID)
	rs.cookies.SetPermanent(RememberTokenCookie, token)
	return nil
}

// CurrentUser returns the acting identity or nil when the request is
// anonymous. The session context is consulted first; the remember cookies
// only when the session carries no user id. The outcome is cached for the
// rest of the request. Only storage failures are returned as errors.
func (rs *RequestSession) CurrentUser(ctx context.Context) (*domain.User, error) {
	if rs.resolved {
		return rs.current, nil
	}

	if userID, ok := rs.session.Get(SessionUserIDKey); ok && userID != "" {
		user, err := rs.m.lookup(ctx, userID)
		if err != nil {
			return nil, err
		}
		token, _ := rs.session.Get(SessionTokenKey)
		if user != nil && tokensEqual(token, user.SessionToken) {
			rs.current = user
		}
		rs.resolved = true
		return rs.current, nil
	}

	if signedID, ok := rs.cookies.Get(RememberUserIDCookie); ok && signedID != "" {
		user, err := rs.fromRememberCookies(ctx, signedID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			rs.writeSession(user)
			rs.current = user
			rs.record(user.ID, domain.AuthMethodRemember)
		}
	}

	rs.resolved = true
	return rs.current, nil
}

func (rs *RequestSession) fromRememberCookies(ctx context.Context, signedID string) (*domain.User, error) {
	userID, err := rs.m.signer.Verify(signedID)
	if err != nil {
		rs.m.logger.Debug().Err(err).Msg("remember cookie rejected")
		return nil, nil
	}
	user, err := rs.m.lookup(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	token, _ := rs.cookies.Get(RememberTokenCookie)
	if !Authenticated(user.RememberDigest, token) {
		return nil, nil
	}
	return user, nil
}

// LoggedIn reports whether the request has an acting identity. Storage
// failures count as logged out.
func (rs *RequestSession) LoggedIn(ctx context.Context) bool {
	user, err := rs.CurrentUser(ctx)
	if err != nil {
		rs.m.logger.Error().Err(err).Msg("resolve current user")
		return false
	}
	return user != nil
}

// IsCurrentUser reports whether user is the acting identity.
func (rs *RequestSession) IsCurrentUser(ctx context.Context, user *domain.User) bool {
	if user == nil {
		return false
	}
	current, err := rs.CurrentUser(ctx)
	if err != nil {
		return false
	}
	return current.SameAs(user)
}

// Forget deletes the remember cookies and clears user's persisted remember
// digest. A nil user only clears the cookies.
func (rs *RequestSession) Forget(ctx context.Context, user *domain.User) error {
	rs.cookies.Delete(RememberUserIDCookie)
	rs.cookies.Delete(RememberTokenCookie)
	if user == nil {
		return nil
	}
	if err := rs.m.users.UpdateRememberDigest(ctx, user.ID, ""); err != nil {
		return fmt.Errorf("forget: %w", err)
	}
	user.RememberDigest = ""
	return nil
}

// LogOut forgets the acting identity, resets the session context and drops
// the cached identity. The session is reset even when forgetting fails.
func (rs *RequestSession) LogOut(ctx context.Context) error {
	user, lookupErr := rs.CurrentUser(ctx)
	forgetErr := rs.Forget(ctx, user)

	rs.session.Clear()
	rs.resolved, rs.current = false, nil

	if user != nil {
		rs.record(user.ID, domain.AuthMethodLogout)
	}
	return errors.Join(lookupErr, forgetErr)
}

// StoreLocation remembers url so a successful login can return to it.
func (rs *RequestSession) StoreLocation(url string) {
	rs.session.Set(SessionForwardingKey, url)
}

// TakeForwardingURL returns and removes the stored location.
func (rs *RequestSession) TakeForwardingURL() (string, bool) {
	url, ok := rs.session.Get(SessionForwardingKey)
	if ok {
		rs.session.Delete(SessionForwardingKey)
	}
	return url, ok && url != ""
}

func (rs *RequestSession) record(userID string, method domain.AuthMethod) {
	if rs.m.audit == nil {
		return
	}
	rs.m.audit.Enqueue(domain.AuthEvent{
		UserID:     userID,
		Method:     method,
		RemoteIP:   rs.meta.RemoteIP,
		UserAgent:  rs.meta.UserAgent,
		OccurredAt: time.Now().UTC(),
	})
}

// lookup resolves a user by id, mapping "not found" to nil.
func (m *SessionManager) lookup(ctx context.Context, id string) (*domain.User, error) {
	user, err := m.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
