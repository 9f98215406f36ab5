package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned backup download URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// SnapshotStorage defines the interface for shipping database snapshots to an
// object store and handing out time-limited download links for them.
type SnapshotStorage interface {
	// Upload stores a serialized database snapshot under the given object key.
	Upload(ctx context.Context, objectKey string, body []byte, contentType string) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for a stored snapshot directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes a stored snapshot.
	DeleteObject(ctx context.Context, objectKey string) error
}
