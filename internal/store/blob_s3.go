// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of *s3.Client used by [s3BlobStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3BlobStorage stores attachments in one S3 bucket. Returned URLs use the
// virtual-hosted bucket address unless a public base URL is configured.
type s3BlobStorage struct {
	client    s3API
	bucket    string
	baseURL   *url.URL
	keyPrefix string
	logger    *logger.Logger
}

// NewS3BlobStorage loads the AWS configuration (static credentials when
// configured, default chain otherwise) and builds an S3 backed [BlobStorage].
func NewS3BlobStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStorage").Msg("failed to load aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3BlobStorage(client, cfg, log)
}

func newS3BlobStorage(client s3API, cfg config.Blob, log *logger.Logger) (*s3BlobStorage, error) {
	rawBase := cfg.PublicBaseURL
	if rawBase == "" {
		rawBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	baseURL, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("error parsing blob base url: %w", err)
	}

	return &s3BlobStorage{
		client:    client,
		bucket:    cfg.Bucket,
		baseURL:   baseURL,
		keyPrefix: cfg.KeyPrefix,
		logger:    log,
	}, nil
}

func (s *s3BlobStorage) Put(ctx context.Context, object BlobObject) (string, error) {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(object.Key),
		Body:               object.Body,
		ContentType:        aws.String(object.ContentType),
		ContentDisposition: aws.String(object.ContentDisposition),
	}
	if object.Size > 0 {
		input.ContentLength = aws.Int64(object.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "s3BlobStorage.Put").Str("key", object.Key).Msg("failed to put object")
		return "", fmt.Errorf("%w: %w", ErrBlobOperation, err)
	}

	return objectURL(s.baseURL, object.Key), nil
}

func (s *s3BlobStorage) Delete(ctx context.Context, rawURL string) error {
	log := logger.FromContext(ctx)

	key, err := s.Key(rawURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("func", "s3BlobStorage.Delete").Str("key", key).Msg("failed to delete object")
		return fmt.Errorf("%w: %w", ErrBlobOperation, err)
	}

	return nil
}

func (s *s3BlobStorage) Key(rawURL string) (string, error) {
	return keyFromURL(s.baseURL, s.keyPrefix, rawURL)
}
