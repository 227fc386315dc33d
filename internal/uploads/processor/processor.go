package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"scriptvault/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUploadFailed    = errors.New("upload failed")
)

// MaxUploadSize is the largest accepted background image
const MaxUploadSize = 10 * 1024 * 1024

const defaultExtension = "jpg"

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// File is an uploaded file as received from the client
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadProcessor struct {
	objects ObjectStore
	logger  *observability.Logger
}

func New(objects ObjectStore, logger *observability.Logger) UploadProcessor {
	return UploadProcessor{objects: objects, logger: logger}
}

// UploadBackground validates and stores a background image, returning its public URL
func (p *UploadProcessor) UploadBackground(ctx context.Context, file *File) (string, error) {
	if file == nil || file.Body == nil {
		return "", ErrNoFile
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "file_name", Value: file.Name},
		observability.Field{Key: "content_type", Value: file.ContentType},
		observability.Field{Key: "file_size", Value: file.Size},
	)

	if !allowedContentTypes[file.ContentType] {
		return "", ErrInvalidFileType
	}
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	key := fmt.Sprintf("%s.%s", uuid.New().String(), extension(file.Name))
	if err := p.objects.PutObject(ctx, key, file.ContentType, file.Size, file.Body); err != nil {
		p.logger.Error(ctx, "failed to upload background", err)
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	url := p.objects.PublicURL(key)
	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "object_key", Value: key}), "background uploaded")
	return url, nil
}

// extension returns the lowercased extension of name without the dot, or jpg
func extension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return defaultExtension
	}
	return strings.ToLower(ext)
}
