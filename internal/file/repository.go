package file

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const repoTimeout = 5 * time.Second

// Repository provides access to file metadata storage.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds a new file metadata repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByIDAndOwner fetches a single record matching both the file id and
// the owning user.
func (r *Repository) GetByIDAndOwner(ctx context.Context, fileID, userID string) (FileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	query := `
SELECT file_id, file_name, user_id
FROM files
WHERE file_id = $1 AND user_id = $2;`

	var rec FileRecord
	err := r.pool.QueryRow(ctx, query, fileID, userID).Scan(&rec.FileID, &rec.FileName, &rec.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return FileRecord{}, ErrRecordNotFound
		}
		return FileRecord{}, fmt.Errorf("get file record: %w", err)
	}
	return rec, nil
}

// ScanByOwner returns all records owned by the given user.
func (r *Repository) ScanByOwner(ctx context.Context, userID string) ([]FileRecord, error) {
	return r.scan(ctx, `SELECT file_id, file_name, user_id FROM files WHERE user_id = $1;`, userID)
}

// ScanByName returns all records carrying the given file name. The scan is
// not scoped to any user: upload conflict resolution matches names across
// the whole table.
func (r *Repository) ScanByName(ctx context.Context, fileName string) ([]FileRecord, error) {
	return r.scan(ctx, `SELECT file_id, file_name, user_id FROM files WHERE file_name = $1;`, fileName)
}

// Put inserts a new record.
func (r *Repository) Put(ctx context.Context, rec FileRecord) error {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	query := `
INSERT INTO files (file_id, file_name, user_id)
VALUES ($1, $2, $3);`

	if _, err := r.pool.Exec(ctx, query, rec.FileID, rec.FileName, rec.UserID); err != nil {
		return fmt.Errorf("put file record: %w", err)
	}
	return nil
}

// Delete removes a record by file id.
func (r *Repository) Delete(ctx context.Context, fileID string) error {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	if _, err := r.pool.Exec(ctx, `DELETE FROM files WHERE file_id = $1;`, fileID); err != nil {
		return fmt.Errorf("delete file record: %w", err)
	}
	return nil
}

func (r *Repository) scan(ctx context.Context, query string, arg any) ([]FileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("scan file records: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var rec FileRecord
		if err := rows.Scan(&rec.FileID, &rec.FileName, &rec.UserID); err != nil {
			return nil, fmt.Errorf("scan file record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file records: %w", err)
	}
	return records, nil
}
