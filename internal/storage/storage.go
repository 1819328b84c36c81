package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

//go:generate mockgen -source=$GOFILE -destination=../service/storage_mocks_test.go -package=service_test

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// PutObject uploads size bytes from body under objectKey.
	PutObject(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// ObjectKey builds a collision-free key: <prefix>/<ownerID>/<uuid><ext>.
func ObjectKey(prefix, ownerID, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(prefix, ownerID, fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(ext)))
}
