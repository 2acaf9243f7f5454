package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Store implements BlobStore on AWS S3. Each logical bucket becomes a key
// prefix within one physical bucket so a single set of credentials covers
// product and category images.
type s3Store struct {
	client *s3.Client
	bucket string
	region string
	logger zerolog.Logger
}

// NewS3Store creates an S3-backed blob store.
func NewS3Store(ctx context.Context, bucket, region string, logger zerolog.Logger) (BlobStore, error) {
	logger = logger.With().Str("component", "s3-blob-store").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 blob store initialised")

	return &s3Store{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}, nil
}

// Upload writes the file under bucket/filename.
func (s *s3Store) Upload(ctx context.Context, bucket, filename string, data []byte, contentType string) error {
	key := bucket + "/" + filename

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to upload object")
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	s.logger.Info().
		Str("key", key).
		Int("size", len(data)).
		Msg("object uploaded")

	return nil
}

// PublicURL returns the public address of an uploaded file.
func (s *s3Store) PublicURL(bucket, filename string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s/%s", s.bucket, s.region, bucket, filename)
}
