package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
)

type fakePresigner struct {
	input *s3.PutObjectInput
	url   string
	err   error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: f.url, Method: "PUT"}, nil
}

func testAvatarConfig() config.Avatars {
	return config.Avatars{
		S3Bucket:      "avatars-bucket",
		S3Region:      "us-east-1",
		S3Endpoint:    "http://localhost:9000",
		S3AccessKey:   "minio",
		S3SecretKey:   "minio-secret",
		PublicBaseURL: "https://cdn.example.com/",
		UploadExpiry:  15 * time.Minute,
	}
}

func TestS3AvatarStorage_PresignUpload(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	presigner := &fakePresigner{url: "http://localhost:9000/avatars-bucket/avatars/42/k?X-Amz-Signature=x"}

	s := newS3AvatarStorage(presigner, testAvatarConfig(), logger.Nop())
	s.newKey = func(userID int64) string { return "avatars/42/k" }
	s.now = func() time.Time { return now }

	upload, err := s.PresignUpload(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "avatars-bucket", aws.ToString(presigner.input.Bucket))
	assert.Equal(t, "avatars/42/k", aws.ToString(presigner.input.Key))
	assert.Equal(t, presigner.url, upload.UploadURL)
	assert.Equal(t, "https://cdn.example.com/avatars/42/k", upload.PublicURL)
	assert.Equal(t, now.Add(15*time.Minute), upload.ExpiresAt)
}

func TestS3AvatarStorage_PresignError(t *testing.T) {
	s := newS3AvatarStorage(&fakePresigner{err: errors.New("no creds")}, testAvatarConfig(), logger.Nop())

	_, err := s.PresignUpload(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPresigningUpload)
}

func TestAvatarKey_ScopedToUser(t *testing.T) {
	a, b := avatarKey(42), avatarKey(42)

	assert.True(t, strings.HasPrefix(a, "avatars/42/"))
	assert.NotEqual(t, a, b)
}

func TestNewPresignClient_SignsOffline(t *testing.T) {
	cfg := testAvatarConfig()
	awsCfg := aws.Config{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}

	s := newS3AvatarStorage(newPresignClient(awsCfg, cfg.S3Endpoint), cfg, logger.Nop())

	upload, err := s.PresignUpload(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.UploadURL, "http://localhost:9000/avatars-bucket/avatars/7/"), upload.UploadURL)
	assert.Contains(t, upload.UploadURL, "X-Amz-Signature=")
	assert.True(t, strings.HasPrefix(upload.PublicURL, "https://cdn.example.com/avatars/7/"))
}
