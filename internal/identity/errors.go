package identity

import "errors"

var (
	// ErrMissingCredential indicates the Authorization header was absent or
	// did not carry the expected scheme.
	ErrMissingCredential = errors.New("missing or malformed authorization header")
	// ErrMalformedToken indicates the bearer token could not be decoded.
	ErrMalformedToken = errors.New("malformed bearer token")
	// ErrUserNotFound signals that the directory has no entry for the
	// token's username claim.
	ErrUserNotFound = errors.New("user not found in directory")
)
