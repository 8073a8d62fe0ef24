// Package storage implements EVID: write-once object storage for misconduct
// report evidence photos. Grounded on the teacher's client-interface-plus-impl
// shape (bookings-api/internal/service/trips_client.go) and on the
// aws-sdk-go-v2/service/s3 usage documented across the retrieval pack's
// manifests for blob-backed evidence stores; no teacher service talks to a
// blob store directly, so this package is new rather than adapted.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// BlobStore is the EVID contract: a write that returns a locator. It has no
// read operation. Evidence photos are immutable once stored (spec.md §4.8).
type BlobStore interface {
	// PutEvidence stores the photo under a locator derived from the
	// reporting passenger and returns that locator for persistence in
	// MisconductReport.
	PutEvidence(ctx context.Context, passengerID string, data []byte, contentType string) (locator string, err error)
}

type s3BlobStore struct {
	client *s3.Client
	bucket string
}

// NewS3BlobStore builds an EVID client from static or ambient AWS
// credentials. endpoint is optional and lets this point at an S3-compatible
// store in development.
func NewS3BlobStore(ctx context.Context, bucket, region, endpoint, accessKeyID, secretAccessKey string) (BlobStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required but not provided in configuration")
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(region))
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3BlobStore{client: client, bucket: bucket}, nil
}

func (s *s3BlobStore) PutEvidence(ctx context.Context, passengerID string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("misconduct/%s/%s.jpg", passengerID, uuid.New().String())

	putCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.PutObject(putCtx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store evidence photo: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
