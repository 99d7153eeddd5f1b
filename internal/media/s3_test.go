package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	puts    []*s3.PutObjectInput
	bodies  []string
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, string(b))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Host_Upload(t *testing.T) {
	objects := &fakeObjects{}
	host := newS3Host(objects, "portfolio", "https://img.example.com/")
	file := writeFile(t, t.TempDir(), "Sunset.JPG")

	asset, err := host.Upload(context.Background(), "gallery_portfolio", file)
	require.NoError(t, err)

	require.Len(t, objects.puts, 1)
	put := objects.puts[0]
	assert.Equal(t, "portfolio", aws.ToString(put.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(put.ContentType))
	assert.Equal(t, "not really an image", objects.bodies[0])

	key := aws.ToString(put.Key)
	assert.True(t, strings.HasPrefix(key, "gallery_portfolio/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, key, asset.RemoteID)
	assert.Equal(t, "https://img.example.com/"+key, asset.URL)
}

func TestS3Host_UploadError(t *testing.T) {
	host := newS3Host(&fakeObjects{err: errors.New("connection refused")}, "b", "https://img.example.com")
	file := writeFile(t, t.TempDir(), "a.png")

	_, err := host.Upload(context.Background(), "f", file)
	assert.ErrorContains(t, err, "connection refused")

	_, err = host.Upload(context.Background(), "f", LocalFile{Path: "/does/not/exist", Filename: "x.png"})
	assert.Error(t, err)
}

func TestS3Host_Delete(t *testing.T) {
	objects := &fakeObjects{}
	host := newS3Host(objects, "portfolio", "https://img.example.com")

	require.NoError(t, host.Delete(context.Background(), "hero_backgrounds/a.jpg"))
	require.Len(t, objects.deletes, 1)
	assert.Equal(t, "hero_backgrounds/a.jpg", aws.ToString(objects.deletes[0].Key))
}

func TestNewS3Host_AppliesConfig(t *testing.T) {
	orig := loadAWSConfig
	t.Cleanup(func() { loadAWSConfig = orig })

	var region string
	loadAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		region = lo.Region
		return aws.Config{Region: lo.Region}, nil
	}

	host, err := NewS3Host(context.Background(), S3Config{
		Region:    "eu-west-1",
		Endpoint:  "http://127.0.0.1:9000/",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "portfolio",
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", region)
	assert.Equal(t, "portfolio", host.bucket)
	assert.Equal(t, "http://127.0.0.1:9000/portfolio", host.publicURL)
}

func TestNewS3Host_ConfigError(t *testing.T) {
	orig := loadAWSConfig
	t.Cleanup(func() { loadAWSConfig = orig })
	loadAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("bad profile")
	}

	_, err := NewS3Host(context.Background(), S3Config{Bucket: "b"})
	assert.ErrorContains(t, err, "bad profile")
}

func TestDefaultPublicURL(t *testing.T) {
	assert.Equal(t, "https://photos.s3.us-east-1.amazonaws.com", defaultPublicURL(S3Config{Bucket: "photos", Region: "us-east-1"}))
}
