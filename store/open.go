package store

import (
	"context"
	"fmt"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/config"
	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/blobx"
)

// Open builds the repository named by cfg.Backend, ready to use: storage
// initialized, schema migrated or slot ensured.
func Open(ctx context.Context, cfg *config.Config) (Repository, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return NewSQLiteRepository(ctx, cfg.DatabaseDSN)

	case config.BackendPostgres:
		return NewPostgresRepository(ctx, cfg.DatabaseDSN)

	case config.BackendFile:
		slot, err := blobx.NewFileStore(cfg.BlobPath)
		if err != nil {
			return nil, err
		}
		return NewBlobRepository(ctx, slot)

	case config.BackendS3:
		slot, err := blobx.NewS3Store(ctx, blobx.S3Options{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Key:             cfg.S3Key,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return NewBlobRepository(ctx, slot)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
