// Package websession binds the session manager to HTTP requests: it loads the
// session context from the backend named by the session cookie, exposes the
// request's cookies, and writes both back before the response goes out.
package websession

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rimonomega/sampleapp/internal/core/service"
)

const (
	// CookieName carries the session id.
	CookieName = "sampleapp_session"

	contextKey = "request_session"
)

// Backend persists session contexts by id. Load returns an empty map for an
// unknown or expired id.
type Backend interface {
	Load(ctx context.Context, id string) (map[string]string, error)
	Save(ctx context.Context, id string, values map[string]string) error
	// Touch extends the lifetime of a session that was read but not changed.
	Touch(ctx context.Context, id string) error
	Destroy(ctx context.Context, id string) error
}

// Options tunes the middleware.
type Options struct {
	// Secure marks every cookie written by the middleware as HTTPS-only.
	Secure bool
	Logger zerolog.Logger
}

// Middleware starts a service.RequestSession for every request and makes it
// available through FromContext.
func Middleware(backend Backend, manager *service.SessionManager, opts Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var id string
			var stored map[string]string
			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
				stored, err = backend.Load(ctx, id)
				if err != nil {
					return fmt.Errorf("websession: %w", err)
				}
				// Ids the server never issued, or that expired, are not reused.
				if len(stored) == 0 {
					id = ""
				}
			}

			values := NewValues(stored)
			jar := NewCookieJar(c, opts.Secure)
			rs := manager.Begin(values, jar, service.RequestMeta{
				RemoteIP:  c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			})
			Attach(c, rs)

			// Handlers that write a body trigger the Before hook; handlers that
			// return an error are committed right after next returns so the
			// error handler's response still carries the session cookie.
			var once sync.Once
			commit := func() {
				once.Do(func() {
					if err := save(ctx, c, backend, values, id, opts.Secure); err != nil {
						opts.Logger.Error().Err(err).Str("path", c.Path()).Msg("session save failed")
					}
				})
			}
			c.Response().Before(commit)

			err := next(c)
			commit()
			return err
		}
	}
}

// Attach makes rs the request session of c.
func Attach(c echo.Context, rs *service.RequestSession) {
	c.Set(contextKey, rs)
}

// FromContext returns the request session started by Middleware, or nil when
// the middleware did not run.
func FromContext(c echo.Context) *service.RequestSession {
	rs, _ := c.Get(contextKey).(*service.RequestSession)
	return rs
}

func save(ctx context.Context, c echo.Context, backend Backend, values *Values, id string, secure bool) error {
	if (values.cleared || values.renewed) && id != "" {
		if err := backend.Destroy(ctx, id); err != nil {
			return err
		}
		if values.cleared {
			expire(c, CookieName, secure)
		}
		id = ""
	}
	if !values.dirty {
		if id != "" {
			return backend.Touch(ctx, id)
		}
		return nil
	}

	snapshot := values.snapshot()
	if len(snapshot) == 0 {
		if id != "" {
			if err := backend.Destroy(ctx, id); err != nil {
				return err
			}
			expire(c, CookieName, secure)
		}
		return nil
	}

	if id == "" {
		id = uuid.NewString()
	}
	if err := backend.Save(ctx, id, snapshot); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
