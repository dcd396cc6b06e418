package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"startconnect/internal/config"
)

// minioStorage is safe for concurrent use.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO connects to the configured endpoint and creates the bucket when missing.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (Storage, error) {
	var missing []string
	for name, v := range map[string]string{
		"MINIO_ENDPOINT":   cfg.Endpoint,
		"MINIO_ACCESS_KEY": cfg.AccessKey,
		"MINIO_SECRET_KEY": cfg.SecretKey,
		"MINIO_BUCKET":     cfg.Bucket,
	} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("object storage not configured: missing %s", strings.Join(missing, ", "))
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := ensureBucket(ctx, cli, cfg.Bucket); err != nil {
		return nil, err
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket}, nil
}

func ensureBucket(ctx context.Context, cli *minio.Client, bucket string) error {
	ok, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("bucket %s: %w", bucket, err)
	}
	if ok {
		return nil
	}
	err = cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return fmt.Errorf("make bucket %s: %w", bucket, err)
	}
	return nil
}

func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("put %s: %w", key, err)
	}
	return ObjectInfo{
		Key:         key,
		Size:        info.Size,
		ETag:        info.ETag,
		ContentType: opt.ContentType,
	}, nil
}

// Delete treats a missing object as success.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}
