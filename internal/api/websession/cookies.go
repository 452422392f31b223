package websession

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// permanentLifetime is how long a "permanent" cookie lives.
const permanentLifetime = 20 * 365 * 24 * time.Hour

// CookieJar implements ports.CookieJar on top of an echo.Context. Writes made
// during the request are visible to later reads of the same request.
type CookieJar struct {
	c       echo.Context
	secure  bool
	written map[string]string
	deleted map[string]struct{}
}

func NewCookieJar(c echo.Context, secure bool) *CookieJar {
	return &CookieJar{
		c:       c,
		secure:  secure,
		written: make(map[string]string),
		deleted: make(map[string]struct{}),
	}
}

func (j *CookieJar) Get(name string) (string, bool) {
	if v, ok := j.written[name]; ok {
		return v, true
	}
	if _, ok := j.deleted[name]; ok {
		return "", false
	}
	cookie, err := j.c.Cookie(name)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (j *CookieJar) SetPermanent(name, value string) {
	j.written[name] = value
	delete(j.deleted, name)
	j.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(permanentLifetime),
		MaxAge:   int(permanentLifetime / time.Second),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (j *CookieJar) Delete(name string) {
	delete(j.written, name)
	j.deleted[name] = struct{}{}
	expire(j.c, name, j.secure)
}

func expire(c echo.Context, name string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
