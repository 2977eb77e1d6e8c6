package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/JMURv/gate-access/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Service interface {
	UploadArchive(ctx context.Context, req *UploadArchiveRequest) (string, error)
}

type UploadArchiveRequest struct {
	Name        string
	ContentType string
	Data        []byte
}

type Storage struct {
	cli    *minio.Client
	bucket string
}

func New(conf config.S3Config) *Storage {
	cli, err := minio.New(
		conf.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
			Secure: conf.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("Failed to create S3 client", zap.Error(err))
	}

	ctx := context.Background()
	exists, err := cli.BucketExists(ctx, conf.Bucket)
	if err != nil {
		zap.L().Fatal("Failed to check S3 bucket", zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("Failed to create S3 bucket", zap.Error(err))
		}
	}

	return &Storage{cli: cli, bucket: conf.Bucket}
}

func (s *Storage) UploadArchive(ctx context.Context, req *UploadArchiveRequest) (string, error) {
	const op = "s3.UploadArchive"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		req.Name,
		bytes.NewReader(req.Data),
		int64(len(req.Data)),
		minio.PutObjectOptions{ContentType: req.ContentType},
	)
	if err != nil {
		zap.L().Error(
			"Failed to upload archive",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.bucket, req.Name), nil
}
