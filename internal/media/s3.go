package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// objectAPI is the subset of *s3.Client the host needs.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Config struct {
	Region        string
	Endpoint      string // empty for AWS, set for MinIO or R2
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string // objects are served from PublicBaseURL/<key>
}

// S3Host stores images in an S3-compatible bucket. Object keys are
// "<folder>/<uuid><ext>" and double as the remote id.
type S3Host struct {
	client    objectAPI
	bucket    string
	publicURL string
}

var loadAWSConfig = config.LoadDefaultConfig

func NewS3Host(ctx context.Context, cfg S3Config) (*S3Host, error) {
	awsCfg, err := loadAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.PublicBaseURL
	if publicURL == "" {
		publicURL = defaultPublicURL(cfg)
	}

	return newS3Host(client, cfg.Bucket, publicURL), nil
}

func newS3Host(client objectAPI, bucket, publicURL string) *S3Host {
	return &S3Host{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (h *S3Host) Upload(ctx context.Context, folder string, file LocalFile) (Asset, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return Asset{}, err
	}
	defer f.Close()

	key := path.Join(folder, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
	in := &s3.PutObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
		Body:   f,
	}
	if file.ContentType != "" {
		in.ContentType = aws.String(file.ContentType)
	}

	if _, err := h.client.PutObject(ctx, in); err != nil {
		return Asset{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return Asset{URL: h.publicURL + "/" + key, RemoteID: key}, nil
}

func (h *S3Host) Delete(ctx context.Context, remoteID string) error {
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(remoteID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", remoteID, err)
	}
	return nil
}

func defaultPublicURL(cfg S3Config) string {
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
