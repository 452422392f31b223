package domain

import "time"

// AuthMethod identifies how an identity was established or dropped.
type AuthMethod string

const (
	AuthMethodPassword AuthMethod = "password"
	AuthMethodRemember AuthMethod = "remember"
	AuthMethodLogout   AuthMethod = "logout"
)

// AuthEvent is an audit record of a login or logout.
type AuthEvent struct {
	UserID     string
	Method     AuthMethod
	RemoteIP   string
	UserAgent  string
	OccurredAt time.Time
}
