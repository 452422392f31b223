package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email/password combination")
	ErrEmailTaken         = errors.New("email has already been taken")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidMicropost   = errors.New("invalid micropost")
	ErrMicropostNotFound  = errors.New("micropost not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthenticated    = errors.New("please log in")
)
