package storage

import (
	"bytes"
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	Log         *zap.Logger
}

// NewMinioStorage returns nil when client is nil so callers can skip archiving.
func NewMinioStorage(minioClient *minio.Client, logger *zap.Logger) contracts.ReportStorage {
	if minioClient == nil {
		return nil
	}
	return &minioStorage{
		MinioClient: minioClient,
		Log:         logger,
	}
}

func (m *minioStorage) UploadJSON(ctx context.Context, bucketName, objectName string, payload interface{}) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	if !exists {
		err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return "", exceptions.ErrMinioCreateObject(err, bucketName)
		}
	}

	_, err = m.MinioClient.PutObject(ctx, bucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	m.Log.Info("minioStorage.UploadJSON succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}
