package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"io"
)

// ObjectStore stores uploaded files and resolves their public URL
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	PublicURL(key string) string
}
