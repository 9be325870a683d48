package file

import (
	"context"
	"errors"
)

type recordSource interface {
	GetByIDAndOwner(ctx context.Context, fileID, userID string) (FileRecord, error)
}

// Guard performs the ownership check for operations that address a single
// file through the request path.
type Guard struct {
	records recordSource
}

// NewGuard constructs a guard over the metadata store.
func NewGuard(records recordSource) *Guard {
	return &Guard{records: records}
}

// Authorize confirms the caller owns the addressed file. The path user
// segment must equal the resolved caller id, and a record must exist for
// both the file id and that user. Read-only.
func (g *Guard) Authorize(ctx context.Context, callerID, pathUserID, fileID string) (FileRecord, error) {
	if pathUserID != callerID {
		return FileRecord{}, ErrNotAuthorized
	}

	rec, err := g.records.GetByIDAndOwner(ctx, fileID, callerID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return FileRecord{}, ErrNotAuthorized
		}
		return FileRecord{}, err
	}
	return rec, nil
}
