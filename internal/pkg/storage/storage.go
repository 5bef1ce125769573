package storage

import (
	"context"
	"io"
)

// AvatarStorage serves employee avatar images. The dashboard only reads them.
type AvatarStorage interface {
	// Open retrieves an avatar file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if the avatar file exists
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL of an avatar, or the default avatar URL when path is empty
	URL(path string) string
}
