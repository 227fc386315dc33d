package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"scriptvault/internal/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// putObjectAPI is the subset of *s3.Client used by Client
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config holds the S3-compatible bucket settings
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// Client stores public assets in an S3-compatible bucket
type Client struct {
	api           putObjectAPI
	bucket        string
	publicBaseURL string
	logger        *observability.Logger
}

// NewClient builds an S3 client. A custom endpoint switches to path-style
// addressing so MinIO, R2 and Supabase storage work unchanged.
func NewClient(ctx context.Context, cfg Config, logger *observability.Logger) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		api:           api,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg),
		logger:        logger,
	}, nil
}

func publicBaseURL(cfg Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// PutObject uploads body under key. Existing keys are not expected; keys are random.
func (c *Client) PutObject(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "bucket", Value: c.bucket},
		observability.Field{Key: "object_key", Value: key},
	)

	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to put object", err)
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// PublicURL returns the URL visitors use to fetch key
func (c *Client) PublicURL(key string) string {
	return c.publicBaseURL + "/" + key
}
