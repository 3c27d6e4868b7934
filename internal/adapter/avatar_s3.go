package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

// objectPresigner is the part of [s3.PresignClient] used here.
type objectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type s3AvatarStorage struct {
	presigner     objectPresigner
	bucket        string
	publicBaseURL string
	expiry        time.Duration
	newKey        func(userID int64) string
	now           func() time.Time
	logger        *logger.Logger
}

// NewS3AvatarStorage builds an [AvatarStorage] on top of an S3 (or
// S3-compatible, e.g. MinIO) bucket. Static credentials are used when both
// keys are configured; otherwise the default AWS credential chain applies.
func NewS3AvatarStorage(ctx context.Context, cfg config.Avatars, log *logger.Logger) (AvatarStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3AvatarStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("%w: %w", ErrLoadingAWSConfig, err)
	}

	return newS3AvatarStorage(newPresignClient(awsCfg, cfg.S3Endpoint), cfg, log), nil
}

func newPresignClient(awsCfg aws.Config, endpoint string) *s3.PresignClient {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return s3.NewPresignClient(client)
}

func newS3AvatarStorage(presigner objectPresigner, cfg config.Avatars, log *logger.Logger) *s3AvatarStorage {
	return &s3AvatarStorage{
		presigner:     presigner,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		expiry:        cfg.UploadExpiry,
		newKey:        avatarKey,
		now:           time.Now,
		logger:        log,
	}
}

func avatarKey(userID int64) string {
	return fmt.Sprintf("avatars/%d/%s", userID, uuid.NewString())
}

func (s *s3AvatarStorage) PresignUpload(ctx context.Context, userID int64) (models.AvatarUpload, error) {
	log := logger.FromContext(ctx)

	key := s.newKey(userID)
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		log.Err(err).Str("func", "*s3AvatarStorage.PresignUpload").Msg("error presigning upload")
		return models.AvatarUpload{}, fmt.Errorf("%w: %w", ErrPresigningUpload, err)
	}

	return models.AvatarUpload{
		UploadURL: req.URL,
		PublicURL: s.publicBaseURL + "/" + key,
		ExpiresAt: s.now().Add(s.expiry).UTC(),
	}, nil
}
