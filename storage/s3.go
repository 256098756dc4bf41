package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 stores uploads in a bucket expected to serve objects publicly, either
// directly or through a CDN base URL.
type S3 struct {
	client     *s3.Client
	bucket     string
	region     string
	publicBase string
}

func NewS3(ctx context.Context, bucket, region, publicBase string) (*S3, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is empty")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3{
		client:     s3.NewFromConfig(cfg),
		bucket:     bucket,
		region:     region,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *S3) Save(ctx context.Context, dir, name, contentType string, r io.Reader) (string, error) {
	key := fmt.Sprintf("uploads/%s/%s", dir, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	if s.publicBase != "" {
		return fmt.Sprintf("%s/%s", s.publicBase, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
