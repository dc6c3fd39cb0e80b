// Package storage uploads saved containers to S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/observability"
)

// ContentType is the MIME type stored with uploaded containers.
const ContentType = "application/zip"

// DefaultRegion is used when S3Config.Region is empty.
const DefaultRegion = "us-east-1"

// S3Config holds the connection settings for an S3-compatible endpoint.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Store uploads objects into a single bucket. The bucket is created on
// first use if it does not exist.
type S3Store struct {
	client   *minio.Client
	bucket   string
	region   string
	initOnce sync.Once
	initErr  error
}

// NewS3Store validates cfg and creates a client. No request is made until
// the first upload.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "init s3 client")
	}

	return &S3Store{
		client: client,
		bucket: bucket,
		region: region,
	}, nil
}

// Bucket returns the target bucket name.
func (s *S3Store) Bucket() string { return s.bucket }

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Upload stores size bytes from r under key.
func (s *S3Store) Upload(ctx context.Context, key string, r io.Reader, size int64) (err error) {
	if s == nil || s.client == nil {
		return errs.New(errs.ErrCodeInvalidInput, "store is nil")
	}
	key = strings.TrimSpace(key)
	if err := errs.ValidateObjectKey(key); err != nil {
		return err
	}

	start := time.Now()
	hooks := observability.Upload()
	hooks.OnUploadStart(ctx, s.bucket, key, size)
	defer func() {
		hooks.OnUploadComplete(ctx, s.bucket, key, time.Since(start), err)
	}()

	if err := s.ensureBucket(ctx); err != nil {
		return errs.Wrap(errs.ErrCodeNetwork, err, "ensure bucket %s", s.bucket)
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: ContentType,
	})
	if err != nil {
		return errs.Wrap(errs.ErrCodeNetwork, err, "put %s/%s", s.bucket, key)
	}
	return nil
}

// UploadFile stores the file at path under key.
func (s *S3Store) UploadFile(ctx context.Context, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "stat %s", path)
	}
	return s.Upload(ctx, key, f, info.Size())
}

// PresignedURL returns a time-limited download URL for key. The key is
// trimmed like in [S3Store.Upload].
func (s *S3Store) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	key = strings.TrimSpace(key)
	if err := errs.ValidateObjectKey(key); err != nil {
		return "", err
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeNetwork, err, "presign %s/%s", s.bucket, key)
	}
	return u.String(), nil
}
