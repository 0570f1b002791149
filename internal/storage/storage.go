package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"workflow-portal-backend/internal/config"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// KeyPrefix is the directory every work item file is stored under
const KeyPrefix = "work_items"

// ErrObjectNotFound is returned when a key has no stored object
var ErrObjectNotFound = errors.New("stored object not found")

// Storage keeps attachment bytes; rows only hold the key
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds a collision-free key for an uploaded file
func ObjectKey(originalName string) string {
	return path.Join(KeyPrefix, uuid.New().String()+"_"+SanitizeName(originalName))
}

// SanitizeName reduces a client-supplied file name to a safe basename
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

// New builds the backend selected by STORAGE_BACKEND
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "minio":
		return NewMinioStorage(ctx, MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	case "local", "":
		fs := afero.NewBasePathFs(afero.NewOsFs(), cfg.StorageLocalRoot)
		return NewLocalStorage(fs), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
