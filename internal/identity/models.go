package identity

// Identity is the caller resolved from a bearer credential. It is derived
// per request and never persisted.
type Identity struct {
	UserID      string
	DisplayName string
	Email       string
}
