package storage

import (
	"context"
	"fmt"

	"Recipe-API/internal/utils"
)

type Storage interface {
	UploadFile(ctx context.Context, objectKey string, data []byte, contentType string) error
	DeleteFile(ctx context.Context, objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

// NewFromConfig picks the backend named by STORAGE_DRIVER. Anything other
// than "s3" stores files on local disk under MEDIA_ROOT.
func NewFromConfig(ctx context.Context) (Storage, error) {
	switch utils.GetConfigDefault("STORAGE_DRIVER", "local") {
	case "s3":
		return NewAwsS3(ctx)
	case "local":
		return NewLocalStorage(
			utils.GetConfigDefault("MEDIA_ROOT", "./media"),
			utils.GetConfigDefault("MEDIA_URL", "/media"),
		)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", utils.GetConfig("STORAGE_DRIVER"))
	}
}
