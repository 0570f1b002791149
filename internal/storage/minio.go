package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinioOptions configures the MinIO backend
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStorage stores objects in a MinIO (S3 compatible) bucket
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects to MinIO and makes sure the bucket exists
func NewMinioStorage(ctx context.Context, opts MinioOptions) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		logrus.WithField("bucket", opts.Bucket).Info("Creating storage bucket")
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
	}

	return &MinioStorage{client: client, bucket: opts.Bucket}, nil
}

// Save uploads r under key
func (s *MinioStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if size <= 0 {
		size = -1
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Open streams the object stored under key
func (s *MinioStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	// GetObject is lazy; Stat surfaces a missing key
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}
	return obj, nil
}

// Delete removes the object stored under key
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
