package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorageService struct {
	Client     *minio.Client
	BucketName string
	Log        *zap.Logger
}

var (
	storageServiceInstance contracts.StorageService
	onceStorageService     sync.Once
)

func NewMinioStorageService(client *minio.Client, logger *zap.Logger, bucketName string) contracts.StorageService {
	onceStorageService.Do(func() {
		instance := &minioStorageService{
			Client:     client,
			BucketName: bucketName,
			Log:        logger,
		}
		storageServiceInstance = instance
	})
	return storageServiceInstance
}

func (s *minioStorageService) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("minioStorageService.UploadObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
	)

	_, err := s.Client.PutObject(ctx, s.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.Log.Error("minioStorageService.UploadObject error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioUploadObject(err)
	}

	objectURL := fmt.Sprintf("%s/%s/%s", s.Client.EndpointURL().String(), s.BucketName, objectName)

	s.Log.Info("minioStorageService.UploadObject succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_url", objectURL),
	)
	return objectURL, nil
}
