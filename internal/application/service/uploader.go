package service

import (
	"context"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
	// VariantURL builds a delivery URL for a stored asset with a transformation applied.
	VariantURL(publicID string, transformation string) (string, error)
	Folder() string
}
