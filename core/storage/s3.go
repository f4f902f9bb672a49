package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"vendorhub/core/config"
	"vendorhub/core/logger"
)

type ObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type s3Storage struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Storage(cfg config.StorageConfig) ObjectStorage {
	client := s3.New(s3.Options{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	})
	return &s3Storage{client: client, bucket: cfg.S3Bucket, region: cfg.S3Region}
}

// Upload stores an object and returns its public URL.
func (s *s3Storage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("S3Storage:Upload:Error", "key", key, "error", err)
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("S3Storage:Delete:Error", "key", key, "error", err)
	}
	return err
}
