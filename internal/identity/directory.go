package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultQueryTimeout = 5 * time.Second

// PostgresDirectory resolves usernames against the replicated user
// directory table.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory constructs a directory backed by PostgreSQL.
func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

// Lookup fetches the canonical user id and profile attributes.
func (d *PostgresDirectory) Lookup(ctx context.Context, username string) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultQueryTimeout)
	defer cancel()

	query := `
SELECT user_id, display_name, email
FROM directory_users
WHERE username = $1;`

	var id Identity
	err := d.pool.QueryRow(ctx, query, username).Scan(&id.UserID, &id.DisplayName, &id.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Identity{}, ErrUserNotFound
		}
		return Identity{}, fmt.Errorf("lookup user %q: %w", username, err)
	}

	return id, nil
}
