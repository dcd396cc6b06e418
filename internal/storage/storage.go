// Package storage holds the object store used for user avatars and group
// images. Objects are streamed; nothing touches local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key prefixes per image kind.
const (
	PrefixAvatar = "avatars"
	PrefixGroup  = "groups"
)

// MaxImageSize caps uploads accepted by the API.
const MaxImageSize = 5 << 20

var ErrUnsupportedType = errors.New("unsupported image type")

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// PutObjectOptions describes an upload. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the store reports after an upload.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object store.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ImageKey builds a fresh object key such as avatars/<owner>/<uuid>.png.
// Content types other than the common web image formats are rejected.
func ImageKey(prefix, ownerID, contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExt[ct]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	return fmt.Sprintf("%s/%s/%s%s", prefix, ownerID, uuid.NewString(), ext), nil
}
