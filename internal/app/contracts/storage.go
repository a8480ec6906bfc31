package contracts

import "context"

type ReportStorage interface {
	UploadJSON(ctx context.Context, bucketName, objectName string, payload interface{}) (string, error)
}
