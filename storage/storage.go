// Package storage persists uploaded images and hands back servable URLs.
// The rest of the system only ever stores the returned URL string; it has
// no opinion on the backend.
package storage

import (
	"context"
	"io"
)

// Storage writes an object under dir/name and returns a publicly servable
// URL for it.
type Storage interface {
	Save(ctx context.Context, dir, name, contentType string, r io.Reader) (string, error)
}
