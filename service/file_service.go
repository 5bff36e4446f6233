package service

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lehoangvu/docchat-be/utils"
)

// FileService keeps an on-disk copy of every accepted upload so the
// original PDF can be served back to the client.
type FileService struct {
	uploadDir string
	logger    *zap.Logger
}

func NewFileService(uploadDir string, logger *zap.Logger) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{
		uploadDir: uploadDir,
		logger:    logger,
	}, nil
}

// Archive writes the upload to the upload directory under a sanitized,
// timestamped filename and returns that filename.
func (s *FileService) Archive(name string, data []byte) (string, error) {
	filename := utils.TimestampedName(name)
	path := filepath.Join(s.uploadDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", name, err)
	}
	s.logger.Debug("upload archived", zap.String("file", filename))
	return filename, nil
}
