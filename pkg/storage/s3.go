// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	pkg "github.com/clearlabel/transparency-portal/pkg"

	libCommons "github.com/LerianStudio/lib-commons/v2/commons"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const (
	s3BackendName      = "s3-reports"
	pdfContentType     = "application/pdf"
	storagePathPrefix  = "s3://"
	errBucketRequired  = "bucket name is required"
	errFilenameMissing = "object key is required"
)

// Compile-time interface satisfaction check.
var _ DocumentStore = (*S3Store)(nil)

// S3Store keeps report documents in an S3-compatible bucket. Works with AWS
// S3, MinIO, SeaweedFS S3 and other S3-compatible services. Calls pass
// through a circuit breaker so an unhealthy backend fast-fails instead of
// piling up requests.
type S3Store struct {
	s3       *s3.Client
	bucket   string
	breakers *pkg.CircuitBreakerManager
}

// NewS3Store creates a new S3-backed document store with the given
// configuration.
func NewS3Store(ctx context.Context, cfg *Config, breakers *pkg.CircuitBreakerManager) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New(errBucketRequired)
	}

	var opts []func(*config.LoadOptions) error

	if cfg.S3Region != "" {
		opts = append(opts, config.WithRegion(cfg.S3Region))
	}

	if cfg.S3AccessKeyID != "" && cfg.S3SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	clientOpts := []func(*s3.Options){}

	if cfg.S3Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		})
	}

	if cfg.S3ForcePathStyle {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return &S3Store{
		s3:       s3.NewFromConfig(awsCfg, clientOpts...),
		bucket:   cfg.S3Bucket,
		breakers: breakers,
	}, nil
}

// s3Sink buffers the document in memory and uploads it on Close. The S3 SDK
// needs the full body up front, so flush-on-close is the upload itself.
type s3Sink struct {
	ctx    context.Context
	store  *S3Store
	key    string
	buf    bytes.Buffer
	closed bool
}

func (s *s3Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.New("write on closed document sink")
	}

	return s.buf.Write(p)
}

func (s *s3Sink) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	return s.store.upload(s.ctx, s.key, s.buf.Bytes())
}

// Create returns a buffered sink that uploads the document on Close. The
// random filename token makes overwriting an existing object negligible, so
// no exclusivity check is issued against the bucket.
func (s *S3Store) Create(ctx context.Context, filename string) (io.WriteCloser, string, error) {
	if err := validateFilename(filename); err != nil {
		return nil, "", err
	}

	storagePath := storagePathPrefix + s.bucket + "/" + filename

	return &s3Sink{ctx: ctx, store: s, key: filename}, storagePath, nil
}

// upload stores the document bytes at the given key.
func (s *S3Store) upload(ctx context.Context, key string, data []byte) error {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "storage.s3.upload")

	defer span.End()

	if key == "" {
		return errors.New(errFilenameMissing)
	}

	_, err := s.breakers.Execute(s3BackendName, func() (any, error) {
		return s.s3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(pdfContentType),
		})
	})
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "failed to upload document", err)
		logger.Errorf("failed to upload document %s: %v", key, err)

		return fmt.Errorf("uploading document: %w", err)
	}

	logger.Infof("uploaded document %s to bucket %s", key, s.bucket)

	return nil
}

// Open retrieves the document as a stream.
func (s *S3Store) Open(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "storage.s3.download")

	defer span.End()

	key, err := s.keyFromStoragePath(storagePath)
	if err != nil {
		return nil, err
	}

	result, err := s.breakers.Execute(s3BackendName, func() (any, error) {
		return s.s3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrDocumentNotFound
		}

		libOpentelemetry.HandleSpanError(&span, "failed to download document", err)
		logger.Errorf("failed to download document %s: %v", key, err)

		return nil, fmt.Errorf("downloading document: %w", err)
	}

	return result.(*s3.GetObjectOutput).Body, nil
}

// Remove deletes the document. S3 treats deleting a missing object as
// success, which matches the best-effort contract.
func (s *S3Store) Remove(ctx context.Context, storagePath string) error {
	logger, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "storage.s3.delete")

	defer span.End()

	key, err := s.keyFromStoragePath(storagePath)
	if err != nil {
		return err
	}

	_, err = s.breakers.Execute(s3BackendName, func() (any, error) {
		return s.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "failed to delete document", err)
		logger.Errorf("failed to delete document %s: %v", key, err)

		return fmt.Errorf("deleting document: %w", err)
	}

	return nil
}

// Exists reports whether the document is present in the bucket.
func (s *S3Store) Exists(ctx context.Context, storagePath string) (bool, error) {
	_, tracer, _, _ := libCommons.NewTrackingFromContext(ctx)
	ctx, span := tracer.Start(ctx, "storage.s3.head")

	defer span.End()

	key, err := s.keyFromStoragePath(storagePath)
	if err != nil {
		return false, err
	}

	_, err = s.breakers.Execute(s3BackendName, func() (any, error) {
		return s.s3.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}

		libOpentelemetry.HandleSpanError(&span, "failed to check document", err)

		return false, fmt.Errorf("checking document: %w", err)
	}

	return true, nil
}

// HealthCheck verifies the bucket is reachable.
func (s *S3Store) HealthCheck(ctx context.Context) error {
	_, err := s.breakers.Execute(s3BackendName, func() (any, error) {
		return s.s3.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(s.bucket),
		})
	})
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}

	return nil
}

// keyFromStoragePath strips the s3://<bucket>/ prefix produced by Create.
func (s *S3Store) keyFromStoragePath(storagePath string) (string, error) {
	prefix := storagePathPrefix + s.bucket + "/"
	if len(storagePath) <= len(prefix) || storagePath[:len(prefix)] != prefix {
		return "", ErrInvalidFilename
	}

	return storagePath[len(prefix):], nil
}
