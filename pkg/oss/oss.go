package oss

import (
	"context"
	"fmt"
	"io"

	"ShortVid.com/config"
	"github.com/minio/minio-go/v7"
)

var minioClient *minio.Client

// ensureBucket 检查存储桶是否存在，不存在则创建
func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo 上传视频对象 返回可访问的url
func UploadVideo(ctx context.Context, data io.Reader, dataSize int64, vid string, contentType string) (string, error) {
	bucketName := config.ConfigInfo.Minio.Bucket
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	objectName := "video/" + vid + ".mp4"
	_, err := minioClient.PutObject(ctx, bucketName, objectName, data, dataSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload video error: %w", err)
	}
	return objectURL(bucketName, objectName), nil
}

// UploadVideoCover 上传视频封面
func UploadVideoCover(ctx context.Context, data io.Reader, dataSize int64, vid string, tag string) (string, error) {
	bucketName := config.ConfigInfo.Minio.Bucket
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	var suffix string
	switch tag {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", tag)
	}

	objectName := "cover/" + vid + suffix
	_, err := minioClient.PutObject(ctx, bucketName, objectName, data, dataSize,
		minio.PutObjectOptions{ContentType: tag})
	if err != nil {
		return "", fmt.Errorf("upload cover error: %w", err)
	}
	return objectURL(bucketName, objectName), nil
}

func objectURL(bucketName, objectName string) string {
	scheme := "http"
	if config.ConfigInfo.Minio.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.ConfigInfo.Minio.Endpoint, bucketName, objectName)
}
