// Package s3 stores poster images in an S3-compatible bucket.
package s3

import (
	"context"
	"fmt"
	"io"
	"moviecatalog/pkg/logging"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config defines the bucket connection.
type Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	// PublicURL is the base of object links handed to clients.
	// Defaults to the path-style URL "<endpoint>/<bucket>".
	PublicURL string `yaml:"publicUrl"`
}

// Store defines an S3-compatible object store.
type Store struct {
	client    objectPutter
	bucket    string
	publicURL string
	logger    *zap.Logger
}

// New creates a store for an AWS S3 or S3-compatible (MinIO) endpoint.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})
	publicURL := cfg.PublicURL
	if publicURL == "" {
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.Region)
		}
		publicURL = strings.TrimRight(endpoint, "/") + "/" + cfg.Bucket
	}
	return NewWithClient(client, cfg.Bucket, publicURL, logger), nil
}

// NewWithClient creates a store over an existing client.
func NewWithClient(client objectPutter, bucket, publicURL string, logger *zap.Logger) *Store {
	logger = logger.With(
		zap.String(logging.FieldComponent, "media"),
		zap.String(logging.FieldType, "s3"),
		zap.String("bucket", bucket),
	)
	return &Store{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/"), logger: logger}
}

// Upload writes body under key and returns its public URL.
func (s *Store) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	s.logger.Info("Uploaded object", zap.String(logging.FieldKey, key), zap.Int64("size", size))
	return s.publicURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}
