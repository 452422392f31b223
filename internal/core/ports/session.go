package ports

// SessionStore is the request-scoped session context. Values written here
// survive to the next request of the same client only.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	// Clear drops every value and rotates the underlying session.
	Clear()
	// Renew keeps the values but moves them to a fresh session once the
	// request completes.
	Renew()
}

// CookieJar is the durable, client-held cookie store.
type CookieJar interface {
	Get(name string) (string, bool)
	// SetPermanent writes a long-lived cookie.
	SetPermanent(name, value string)
	Delete(name string)
}

// CookieSigner protects cookie values against tampering.
type CookieSigner interface {
	Sign(value string) (string, error)
	// Verify returns the original value or an error when signed was not
	// produced by Sign.
	Verify(signed string) (string, error)
}
