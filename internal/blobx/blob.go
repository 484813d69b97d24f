// Package blobx abstracts a single named slot of bytes. The serialized
// store backend keeps its whole record collection in one slot; the slot can
// live on the local filesystem or in an S3-compatible object store.
package blobx

import (
	"context"
	"errors"
)

// ErrorSlotNotFound is returned by Load when the slot has never been
// written. Callers usually treat it as an empty collection.
var ErrorSlotNotFound = errors.New("slot not found")

// Store reads and replaces the contents of one named slot.
type Store interface {
	// Load returns the current slot contents, or ErrorSlotNotFound.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the slot contents. The replacement is atomic: a
	// concurrent Load sees either the old or the new contents, never a mix.
	Save(ctx context.Context, data []byte) error
}
