package domain

import "errors"

// Failure taxonomy for calls against the remote storefront API. Credential
// and signup failures always surface to the user-facing flow; upload failures
// are recovered locally and never surface.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidationRejected = errors.New("registration rejected")
	ErrConflict           = errors.New("account already exists")
	ErrNetwork            = errors.New("upstream unreachable")
	ErrServer             = errors.New("upstream internal error")
	ErrUploadFailed       = errors.New("avatar upload failed")
	ErrNotFound           = errors.New("not found")
)

// ErrPartialSession is returned when a session update would leave an identity
// without a token or a token without an identity.
var ErrPartialSession = errors.New("session requires both identity and token")

// ErrNoSession is returned by the session mirror when no record exists for a
// session ID.
var ErrNoSession = errors.New("no session")
