package contracts

import (
	"context"
	"io"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}
