package file

import "errors"

var (
	// ErrNotAuthorized is returned when the caller does not own the file
	// addressed by the request path.
	ErrNotAuthorized = errors.New("user not authorized to perform this action")
	// ErrRecordNotFound signals that no metadata record matches.
	ErrRecordNotFound = errors.New("file record not found")
)

// ValidationError carries a client-safe message describing why a request
// body was rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
