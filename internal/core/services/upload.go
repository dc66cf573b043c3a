package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docshub/docshub-cli/internal/core/domain"
	"github.com/docshub/docshub-cli/internal/core/ports/driven"
	"github.com/docshub/docshub-cli/internal/core/ports/driving"
	"github.com/docshub/docshub-cli/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.UploadService = (*UploadService)(nil)

// UploadService uploads local files to the backend upload endpoint.
// No file-type or size validation happens here; the backend decides
// what it accepts.
type UploadService struct {
	backend driven.Backend
}

// NewUploadService creates a new upload service.
func NewUploadService(backend driven.Backend) *UploadService {
	return &UploadService{backend: backend}
}

// Upload sends the file at path to the backend and returns the
// reference the backend assigned.
func (s *UploadService) Upload(ctx context.Context, path string) (string, error) {
	if s.backend == nil {
		return "", domain.ErrNotImplemented
	}
	if path == "" {
		return "", fmt.Errorf("upload: %w: empty path", domain.ErrInvalidInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("upload: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	logger.Debug("uploading %s", path)
	ref, err := s.backend.UploadFile(ctx, filepath.Base(path), f)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return ref, nil
}
