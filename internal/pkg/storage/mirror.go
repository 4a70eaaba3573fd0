package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/SandeshLive/Sandesh/internal/pkg/env"
)

// Mirror copies stored files into an S3-compatible bucket so previews keep
// working if the local disk is rebuilt. It is optional and strictly
// best-effort; the local filesystem stays the source of truth.
type Mirror struct {
	client *minio.Client
	bucket string
}

// NewMirrorFromEnv builds a mirror from S3_* environment values. Returns
// (nil, nil) when no endpoint is configured.
func NewMirrorFromEnv() (*Mirror, error) {
	endpoint := env.GetEnv("S3_ENDPOINT", "")
	if endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(env.GetEnv("S3_ACCESS_KEY", ""), env.GetEnv("S3_SECRET_KEY", ""), ""),
		Secure: env.GetEnv("S3_USE_SSL", "true") == "true",
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 mirror client: %w", err)
	}

	bucket := env.GetEnv("S3_BUCKET", "sandesh-uploads")
	return &Mirror{client: client, bucket: bucket}, nil
}

// Put uploads one stored file under its relative path as object key.
func (m *Mirror) Put(relPath, absPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := strings.TrimPrefix(relPath, "/")
	contentType := mime.TypeByExtension(filepath.Ext(absPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.FPutObject(ctx, m.bucket, key, absPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Remove deletes the mirrored object for a stored file.
func (m *Mirror) Remove(relPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := strings.TrimPrefix(relPath, "/")
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
