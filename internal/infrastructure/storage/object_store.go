// Package storage provides object storage for archived documents.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrKeyRequired is returned when an operation is given an empty key
var ErrKeyRequired = errors.New("storage key is required")

// ObjectStore is the subset of S3 operations the invoice archive needs
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	ObjectExists(ctx context.Context, key string) (bool, error)
	DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}
