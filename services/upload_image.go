package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/djblanc360/portfolio-backend/config"
)

// ImageUploader stores project images in an S3 bucket and hands back the
// public URL that gets written into a project's imageUrl field.
type ImageUploader struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewImageUploader builds an uploader from config. Requires S3_BUCKET,
// S3_REGION, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY; S3_PUBLIC_BASE_URL
// overrides the default bucket URL when a CDN sits in front.
func NewImageUploader(cfg map[string]string) (*ImageUploader, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	region := config.GetString(cfg, "S3_REGION", "")
	accessKey := config.GetString(cfg, "S3_ACCESS_KEY_ID", "")
	secretKey := config.GetString(cfg, "S3_SECRET_ACCESS_KEY", "")
	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("incomplete S3 config: S3_BUCKET, S3_REGION, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &ImageUploader{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(config.GetString(cfg, "S3_PUBLIC_BASE_URL", ""), "/"),
	}, nil
}

// Upload stores the image bytes under a uuid-prefixed key and returns the
// public URL. Content type is sniffed from the payload when the caller does
// not provide one.
func (u *ImageUploader) Upload(ctx context.Context, filename string, payload []byte, contentType string) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("empty upload payload")
	}
	if contentType == "" {
		contentType = http.DetectContentType(payload)
	}

	key := fmt.Sprintf("projects/%s%s", uuid.New().String(), sanitizeExtension(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	return u.publicURL(key), nil
}

func (u *ImageUploader) publicURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

// sanitizeExtension keeps only a plausible file extension from the uploaded
// filename so object keys stay clean.
func sanitizeExtension(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// UploadTimeout bounds a single PutObject round trip.
const UploadTimeout = 45 * time.Second
