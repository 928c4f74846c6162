// Package storage provides an abstraction layer for object storage services.
//
// Verification reports can be shipped to an S3 compatible bucket so that an
// operator looking after several server hosts can collect their diagnostics
// in one place. The package wraps the MinIO Go client behind a small Client
// interface covering exactly what the upload needs.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first upload.
//   - PutObject: Uploads the report.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
