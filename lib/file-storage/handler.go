package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"fairhire-backend/config"
	s3client "fairhire-backend/s3"
)

type Provider interface {
	UploadCV(ctx context.Context, candidateID string, file []byte, fileName string) (key string, err error)
	UploadPhoto(ctx context.Context, candidateID string, file []byte, fileName string) (key string, err error)
	UploadCertificate(ctx context.Context, candidateID string, file []byte, fileName string) (key string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadCV(ctx context.Context, candidateID string, file []byte, fileName string) (string, error) {
	key := fmt.Sprintf("candidates/cv/%s/%s", candidateID, fileName)
	return key, i.putObject(ctx, key, file, "application/pdf")
}

func (i impl) UploadPhoto(ctx context.Context, candidateID string, file []byte, fileName string) (string, error) {
	key := fmt.Sprintf("candidates/photos/%s/%s", candidateID, fileName)
	return key, i.putObject(ctx, key, file, "application/octet-stream")
}

func (i impl) UploadCertificate(ctx context.Context, candidateID string, file []byte, fileName string) (string, error) {
	key := fmt.Sprintf("candidates/certificates/%s/%s", candidateID, fileName)
	return key, i.putObject(ctx, key, file, "application/octet-stream")
}

func (i impl) putObject(ctx context.Context, key string, file []byte, contentType string) error {
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "file upload error")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "file read error")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "file read error")
	}
	return data, nil
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
