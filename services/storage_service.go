package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	cfg "github.com/DMan1906/twinflames/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const uploadURLExpiry = 5 * time.Minute

// UploadTarget 一个预签名上传地址
type UploadTarget struct {
	UploadURL string
	ObjectKey string
	MimeType  string
}

// StorageService 基于S3协议的对象存储服务（MinIO兼容），
// 负责生成每日照片的预签名上传地址，客户端直传，服务端不经手文件内容。
type StorageService struct {
	bucket  string
	presign *s3.PresignClient
}

func NewStorageService(conf cfg.Config) (*StorageService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(conf.MinioRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			conf.MinioAccessKey,
			conf.MinioSecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(conf.MinioEndpoint)
		o.UsePathStyle = true // MinIO需要path-style访问
	})

	return &StorageService{
		bucket:  conf.MinioBucket,
		presign: s3.NewPresignClient(client),
	}, nil
}

// CreateDailyPhotoUploadURLs 为当天的前置/后置照片各生成一个预签名PUT地址
func (s *StorageService) CreateDailyPhotoUploadURLs(ctx context.Context, userID, day, frontMime, backMime string) (front, back *UploadTarget, err error) {
	frontMime = sanitizeMime(frontMime)
	backMime = sanitizeMime(backMime)

	now := time.Now().UnixMilli()
	frontKey := fmt.Sprintf("daily/%s/%s/front-%d.%s", day, userID, now, extensionFromMime(frontMime))
	backKey := fmt.Sprintf("daily/%s/%s/back-%d.%s", day, userID, now, extensionFromMime(backMime))

	front, err = s.presignPut(ctx, frontKey, frontMime)
	if err != nil {
		return nil, nil, err
	}
	back, err = s.presignPut(ctx, backKey, backMime)
	if err != nil {
		return nil, nil, err
	}
	return front, back, nil
}

func (s *StorageService) presignPut(ctx context.Context, key, mimeType string) (*UploadTarget, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(mimeType),
	}, s3.WithPresignExpires(uploadURLExpiry))
	if err != nil {
		return nil, err
	}

	return &UploadTarget{
		UploadURL: req.URL,
		ObjectKey: key,
		MimeType:  mimeType,
	}, nil
}

func sanitizeMime(mime string) string {
	if mime == "" || !strings.Contains(mime, "/") {
		return "image/jpeg"
	}
	return mime
}

func extensionFromMime(mime string) string {
	parts := strings.SplitN(mime, "/", 2)
	ext := "jpg"
	if len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	if ext == "jpeg" {
		ext = "jpg"
	}
	return ext
}
