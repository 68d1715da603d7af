package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
)

// S3Uploader stores resume blobs in an S3 bucket and hands back their
// public URL. It does no processing of file contents.
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Uploader builds an uploader from configuration. Required keys:
// S3_BUCKET, S3_REGION, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY. Optional:
// S3_PUBLIC_BASE_URL for a CDN or custom domain in front of the bucket.
func NewS3Uploader(ctx context.Context, cfg map[string]string) (*S3Uploader, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not configured")
	}
	region := config.GetString(cfg, "S3_REGION", "us-east-1")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.GetString(cfg, "S3_ACCESS_KEY_ID", ""),
			config.GetString(cfg, "S3_SECRET_ACCESS_KEY", ""),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL", "")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Uploader{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes the blob under a timestamped key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, filename string, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("resumes/%d-%s", time.Now().Unix(), sanitizeKey(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errs.NewObjectStoreError("put", err)
	}

	return fmt.Sprintf("%s/%s", u.publicBaseURL, key), nil
}

// sanitizeKey keeps object keys to a safe character set.
func sanitizeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "resume.pdf"
	}
	return b.String()
}
