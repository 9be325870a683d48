package file

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thecadors/fileshare/internal/identity"
	"github.com/thecadors/fileshare/internal/notify"
	"go.uber.org/zap"
)

// MetadataStore is the metadata collection the operations run against.
type MetadataStore interface {
	GetByIDAndOwner(ctx context.Context, fileID, userID string) (FileRecord, error)
	ScanByOwner(ctx context.Context, userID string) ([]FileRecord, error)
	ScanByName(ctx context.Context, fileName string) ([]FileRecord, error)
	Put(ctx context.Context, rec FileRecord) error
	Delete(ctx context.Context, fileID string) error
}

// ObjectStore holds file contents keyed by "{user_id}/{file_name}".
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte) error
	RemoveObject(ctx context.Context, key string) error
	PresignedGetObject(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Service implements the four file-sharing operations. Each operation is a
// linear sequence of collaborator calls with no retries and no
// compensation between paired object/metadata writes.
type Service struct {
	records    MetadataStore
	objects    ObjectStore
	guard      *Guard
	sender     notify.Sender
	presignTTL time.Duration
	log        *zap.Logger
}

// NewService constructs the file service.
func NewService(records MetadataStore, objects ObjectStore, sender notify.Sender, presignTTL time.Duration, log *zap.Logger) *Service {
	return &Service{
		records:    records,
		objects:    objects,
		guard:      NewGuard(records),
		sender:     sender,
		presignTTL: presignTTL,
		log:        log,
	}
}

// UploadRequest is the upload body after schema validation.
type UploadRequest struct {
	RemoteFileName string
	FileData       string
}

// UploadResult is the upload success body.
type UploadResult struct {
	FileID string `json:"file_id"`
	Status string `json:"status"`
}

// Upload stores the decoded file contents and registers a fresh metadata
// record. Any existing record with the same file name is replaced, no
// matter which user owns it; scoping the scan to the caller would change
// observable behavior.
func (s *Service) Upload(ctx context.Context, userID string, req UploadRequest) (UploadResult, error) {
	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return UploadResult{}, &ValidationError{Message: "file_data is not valid base64"}
	}

	key := ObjectKey(userID, req.RemoteFileName)
	if err := s.objects.PutObject(ctx, key, data); err != nil {
		return UploadResult{}, fmt.Errorf("store object %s: %w", key, err)
	}

	matches, err := s.records.ScanByName(ctx, req.RemoteFileName)
	if err != nil {
		return UploadResult{}, fmt.Errorf("scan records by name: %w", err)
	}
	if len(matches) > 0 {
		s.log.Info("file already uploaded, replacing its record with a new file_id",
			zap.String("file_name", req.RemoteFileName),
			zap.String("previous_file_id", matches[0].FileID),
			zap.String("previous_user_id", matches[0].UserID),
		)
		if err := s.records.Delete(ctx, matches[0].FileID); err != nil {
			return UploadResult{}, fmt.Errorf("delete conflicting record: %w", err)
		}
	}

	rec := FileRecord{
		FileID:   uuid.NewString(),
		FileName: req.RemoteFileName,
		UserID:   userID,
	}
	if err := s.records.Put(ctx, rec); err != nil {
		return UploadResult{}, fmt.Errorf("put file record: %w", err)
	}

	return UploadResult{FileID: rec.FileID, Status: "UPLOADED"}, nil
}

// List returns the caller's files. The scan filter is bound to the
// resolved caller id, so no further authorization applies.
func (s *Service) List(ctx context.Context, userID string) ([]FileSummary, error) {
	records, err := s.records.ScanByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("scan records by owner: %w", err)
	}

	files := make([]FileSummary, 0, len(records))
	for _, rec := range records {
		files = append(files, FileSummary{FileID: rec.FileID, FileName: rec.FileName})
	}
	return files, nil
}

// DeleteResult is the delete success body.
type DeleteResult struct {
	UserID     string `json:"user_id"`
	FileID     string `json:"file_id"`
	FileName   string `json:"file_name"`
	FileStatus string `json:"file_status"`
}

// Delete removes the object and then the metadata record for a file the
// caller owns. If the record delete fails after the object delete
// succeeded, the record is left dangling; there is no rollback.
func (s *Service) Delete(ctx context.Context, callerID, pathUserID, fileID string) (DeleteResult, error) {
	rec, err := s.guard.Authorize(ctx, callerID, pathUserID, fileID)
	if err != nil {
		return DeleteResult{}, err
	}

	key := ObjectKey(rec.UserID, rec.FileName)
	if err := s.objects.RemoveObject(ctx, key); err != nil {
		return DeleteResult{}, fmt.Errorf("remove object %s: %w", key, err)
	}
	if err := s.records.Delete(ctx, rec.FileID); err != nil {
		return DeleteResult{}, fmt.Errorf("delete file record: %w", err)
	}

	return DeleteResult{
		UserID:     rec.UserID,
		FileID:     rec.FileID,
		FileName:   rec.FileName,
		FileStatus: "DELETED",
	}, nil
}

// ShareRequest is the share body after schema validation.
type ShareRequest struct {
	ShareWith []string
}

// ShareResult is the share success body.
type ShareResult struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

// Share generates a time-limited download URL for a file the caller owns
// and mails it to every recipient. Sends are sequential and best effort: a
// failed recipient is logged and the rest still receive the link.
func (s *Service) Share(ctx context.Context, caller identity.Identity, pathUserID, fileID string, req ShareRequest) (ShareResult, error) {
	rec, err := s.guard.Authorize(ctx, caller.UserID, pathUserID, fileID)
	if err != nil {
		return ShareResult{}, err
	}

	key := ObjectKey(rec.UserID, rec.FileName)
	presignedURL, err := s.objects.PresignedGetObject(ctx, key, s.presignTTL)
	if err != nil {
		return ShareResult{}, fmt.Errorf("presign object %s: %w", key, err)
	}

	body := notify.ShareEmailBody(caller.DisplayName, presignedURL)
	for _, recipient := range req.ShareWith {
		if err := s.sender.Send(ctx, recipient, notify.ShareSubject, body); err != nil {
			s.log.Error("cannot send the share email",
				zap.String("recipient", recipient),
				zap.String("file_id", rec.FileID),
				zap.Error(err),
			)
		}
	}

	return ShareResult{FileID: rec.FileID, FileName: rec.FileName, Status: "SHARED"}, nil
}
