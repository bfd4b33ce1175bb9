package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"

	"rentora/internal/infrastructure/database"
	"rentora/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3FileStorage keeps contract documents and property images in one bucket,
// keyed as <folder>/<uuid><ext>. The returned URL is what gets persisted on
// the entity.
//
// Env vars:
//   - S3_BUCKET (default: rentora-uploads)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
//   - S3_PUBLIC_URL (optional base for returned URLs; defaults to the
//     virtual-hosted AWS URL, or the endpoint when one is set)

type S3FileStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

var _ interfaces.IFileStorage = (*S3FileStorage)(nil)

func NewS3FileStorage(ctx context.Context) *S3FileStorage {
	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "rentora-uploads"
	}

	publicURL := os.Getenv("S3_PUBLIC_URL")
	if publicURL == "" {
		if endpoint != "" {
			publicURL = fmt.Sprintf("%s/%s", strings.TrimRight(endpoint, "/"), bucket)
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
		}
	}

	return &S3FileStorage{client: client, bucket: bucket, publicURL: publicURL}
}

func (s *S3FileStorage) Store(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), extensionFor(contentType))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}
