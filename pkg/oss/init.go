package oss

import (
	"ShortVid.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func InitMinio() error {
	endpoint := config.ConfigInfo.Minio.Endpoint
	accessKeyID := config.ConfigInfo.Minio.AccessKey
	secretAccessKey := config.ConfigInfo.Minio.SecretKey
	useSSL := config.ConfigInfo.Minio.UseSSL

	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", endpoint, accessKeyID)

	var err error
	minioClient, err = minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Info("Connect Minio Success")
	return nil
}
