package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/civic-lens/api-go/config"
	"github.com/google/uuid"
)

// Storage persists report images and hands back the object key that is
// stored on the report row. With a configured bucket it talks to
// Cloudflare R2 through the S3 API; otherwise it writes beneath a
// local uploads directory.
type Storage struct {
	client *s3.Client
	bucket string
	dir    string
}

func NewStorage() *Storage {
	cfg := config.GetR2Config()
	if cfg.AccountID == "" || cfg.BucketName == "" {
		return &Storage{dir: cfg.UploadDir}
	}

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &Storage{client: client, bucket: cfg.BucketName}
}

// NewLocalStorage always writes to dir, regardless of environment.
func NewLocalStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// Store saves the image and returns its key, "reports/<uuid><ext>".
// The original filename only contributes its extension.
func (s *Storage) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := "reports/" + uuid.New().String() + ext

	if s.client != nil {
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   r,
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload image: %w", err)
		}
		return key, nil
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return key, nil
}

// Delete removes a previously stored image.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if s.client != nil {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return fmt.Errorf("failed to delete image: %w", err)
		}
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}
