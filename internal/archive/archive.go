// Package archive writes JSON snapshots of deleted registrations to object
// storage so moderation actions leave an audit trail. Deletion is the only
// irreversible exit from the registration lifecycle; the snapshot is the
// last record of the entry.
package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elite-arena/apiserver/config"
	"github.com/elite-arena/apiserver/types"
)

// Backend stores a named object in a bucket.
type Backend interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Archive wraps an object-storage backend with the snapshot API used by the
// registration workflow.
type Archive struct {
	backend Backend
}

// New constructs an Archive for the backend named in cfg, or nil when the
// backend is "none". A nil Archive is safe to call.
func New(ctx context.Context, cfg config.ArchiveConfig) (*Archive, error) {
	var backend Backend
	var err error

	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "minio":
		backend, err = NewMinioBackend(cfg.Minio)
	case "gcs":
		backend, err = NewGCSBackend(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if err := backend.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure archive bucket: %w", err)
	}

	return &Archive{backend: backend}, nil
}

// Store writes the registration snapshot under registrations/<id>.json.
func (a *Archive) Store(ctx context.Context, reg types.Registration) error {
	if a == nil {
		return nil
	}

	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("encode registration %d: %w", reg.ID, err)
	}

	key := fmt.Sprintf("registrations/%d.json", reg.ID)
	if err := a.backend.Put(ctx, key, data, "application/json"); err != nil {
		return fmt.Errorf("archive registration %d: %w", reg.ID, err)
	}
	return nil
}
