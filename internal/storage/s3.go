package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/config"
	"github.com/goliatone/go-club-setup/internal/logging"
)

const DefaultSignedURLTTL = 15 * time.Minute

// File is an upload ready to be stored.
type File struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
}

// Uploader stores club assets.
type Uploader interface {
	UploadFile(ctx context.Context, file File) (*UploadResult, error)
	DeleteFile(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Uploader writes public-read objects into a single bucket.
type S3Uploader struct {
	client   objectAPI
	presign  presignAPI
	bucket   string
	region   string
	endpoint string
	ttl      time.Duration
	logger   logging.Logger
}

// NewS3Uploader builds an uploader from static credentials. A custom
// endpoint switches to path-style addressing for S3 compatible stores.
func NewS3Uploader(ctx context.Context, cfg config.S3Config, logger logging.Logger) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}

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
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(client, s3.NewPresignClient(client), cfg, logger), nil
}

func newS3Uploader(client objectAPI, presign presignAPI, cfg config.S3Config, logger logging.Logger) *S3Uploader {
	if logger == nil {
		logger = logging.Nop()
	}
	ttl := cfg.SignedURLTTL
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &S3Uploader{
		client:   client,
		presign:  presign,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		ttl:      ttl,
		logger:   logger,
	}
}

func (u *S3Uploader) UploadFile(ctx context.Context, file File) (*UploadResult, error) {
	if file.Body == nil {
		return nil, apperr.Upload(fmt.Errorf("file %q has no content", file.Filename))
	}

	key := ObjectKey(file.Filename)
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   file.Body,
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		u.logger.Error("failed to upload %s to bucket %s: %v", key, u.bucket, err)
		return nil, apperr.Upload(err)
	}

	u.logger.Debug("uploaded %s to bucket %s", key, u.bucket)
	return &UploadResult{Key: key, Location: u.Location(key)}, nil
}

func (u *S3Uploader) DeleteFile(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		u.logger.Error("failed to delete %s from bucket %s: %v", key, u.bucket, err)
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// SignedURL returns a temporary download URL. ttl <= 0 uses the configured default.
func (u *S3Uploader) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = u.ttl
	}
	req, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

// Location is the public URL of key.
func (u *S3Uploader) Location(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectKey prefixes a sanitized filename with a random UUID.
func ObjectKey(filename string) string {
	name := unsafeFilename.ReplaceAllString(path.Base(strings.ReplaceAll(filename, `\`, "/")), "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	return uuid.NewString() + "-" + name
}

// Disabled rejects every upload. It stands in when no bucket is configured.
type Disabled struct{}

func (Disabled) UploadFile(context.Context, File) (*UploadResult, error) {
	return nil, apperr.Upload(fmt.Errorf("object storage is not configured"))
}

func (Disabled) DeleteFile(context.Context, string) error {
	return fmt.Errorf("object storage is not configured")
}

func (Disabled) SignedURL(context.Context, string, time.Duration) (string, error) {
	return "", fmt.Errorf("object storage is not configured")
}
