package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thecadors/fileshare/internal/config"
)

type fakeDirectory struct {
	entries map[string]Identity
}

func (f *fakeDirectory) Lookup(ctx context.Context, username string) (Identity, error) {
	id, ok := f.entries[username]
	if !ok {
		return Identity{}, ErrUserNotFound
	}
	return id, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{BearerScheme: "Bearer", UsernameClaim: "username"}
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestResolveReturnsDirectoryEntry(t *testing.T) {
	directory := &fakeDirectory{entries: map[string]Identity{
		"jdoe": {UserID: "u1", DisplayName: "Jean Doe", Email: "jean@example.com"},
	}}
	resolver := NewTokenResolver(directory, testAuthConfig())

	token := signToken(t, jwt.MapClaims{"username": "jdoe"}, "whatever")

	id, err := resolver.Resolve(context.Background(), "Bearer "+token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.UserID != "u1" || id.DisplayName != "Jean Doe" || id.Email != "jean@example.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestResolveDoesNotVerifySignature(t *testing.T) {
	directory := &fakeDirectory{entries: map[string]Identity{"jdoe": {UserID: "u1"}}}
	resolver := NewTokenResolver(directory, testAuthConfig())

	// Two tokens signed with different secrets both resolve: only claims
	// are read.
	for _, secret := range []string{"secret-a", "secret-b"} {
		token := signToken(t, jwt.MapClaims{"username": "jdoe"}, secret)
		if _, err := resolver.Resolve(context.Background(), "Bearer "+token); err != nil {
			t.Fatalf("Resolve with secret %q: %v", secret, err)
		}
	}
}

func TestResolveRejectsMissingOrWrongScheme(t *testing.T) {
	resolver := NewTokenResolver(&fakeDirectory{}, testAuthConfig())

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer a b"} {
		_, err := resolver.Resolve(context.Background(), header)
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("header %q: expected ErrMissingCredential, got %v", header, err)
		}
	}
}

func TestResolveRejectsMalformedToken(t *testing.T) {
	resolver := NewTokenResolver(&fakeDirectory{}, testAuthConfig())

	_, err := resolver.Resolve(context.Background(), "Bearer not-a-jwt")
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestResolveRejectsMissingUsernameClaim(t *testing.T) {
	resolver := NewTokenResolver(&fakeDirectory{}, testAuthConfig())

	token := signToken(t, jwt.MapClaims{"sub": "u1"}, "whatever")
	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestResolveUnknownUser(t *testing.T) {
	resolver := NewTokenResolver(&fakeDirectory{entries: map[string]Identity{}}, testAuthConfig())

	token := signToken(t, jwt.MapClaims{"username": "ghost"}, "whatever")
	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
