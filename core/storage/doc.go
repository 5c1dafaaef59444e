// Package storage provides an abstraction layer for S3-compatible object storage.
//
// It wraps the MinIO Go client so prune reports (the list of removed
// locations) can be archived to AWS S3 or a self-hosted MinIO instance.
// Uploads are optional and controlled by Config.Enabled.
//
// # Client Interface
//
// The Client interface only exposes the operations report archiving needs,
// which keeps the testify mock in core/storage/mocks small.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
