package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"collabhub.backend/pkg/crypto"
	"collabhub.backend/pkg/logger"
)

// ObjectPutter is the slice of the S3 API the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader stores user-submitted assets (avatars, portfolio files) in an
// S3 bucket and hands back a public object URL.
type Uploader struct {
	client ObjectPutter
	bucket string
	region string
}

// NewUploader builds an uploader from the ambient AWS configuration.
func NewUploader(ctx context.Context, bucket, region string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return &Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// NewUploaderWithClient wires a specific S3 client, used by tests.
func NewUploaderWithClient(client ObjectPutter, bucket, region string) *Uploader {
	return &Uploader{client: client, bucket: bucket, region: region}
}

// Upload writes the asset under a random key that keeps the original
// extension, and returns its URL.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	token, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate object key: %w", err)
	}
	key := "uploads/" + token + ext

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	logger.Info(ctx, "asset uploaded", zap.String("key", key))
	return url, nil
}
