package config

import (
	"os"
)

// R2Config holds credentials for the S3-compatible bucket that stores
// report images. When AccountID or BucketName is empty the storage
// service falls back to writing files under UploadDir.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UploadDir       string
}

func GetR2Config() *R2Config {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	return &R2Config{
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		Region:          "auto",
		UploadDir:       uploadDir,
	}
}
