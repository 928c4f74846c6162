package integrity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"mom-toolkit/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads verification reports to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewPublisher creates a report publisher.
func NewPublisher(client storage.Client, cfg storage.Config, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
	}
}

// ObjectKey is reports/<host>/<run-id>.json.
func ObjectKey(rep *Report) string {
	host := "unknown-host"
	if rep.Host != nil && rep.Host.Hostname != "" {
		host = rep.Host.Hostname
	}
	return path.Join("reports", host, rep.RunID+".json")
}

// Publish stores rep and returns its object key.
func (p *Publisher) Publish(ctx context.Context, rep *Report) (string, error) {
	if err := storage.EnsureBucket(ctx, p.client, p.bucket, p.region); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	key := ObjectKey(rep)
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}

	p.logger.Info("Report published", zap.String("bucket", p.bucket), zap.String("key", key))
	return key, nil
}
