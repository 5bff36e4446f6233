package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	services "github.com/lehoangvu/docchat-be/service"
	"github.com/lehoangvu/docchat-be/types"
)

type UploadHandler struct {
	session     *services.SessionService
	fileService *services.FileService
	logger      *zap.Logger
}

func NewUploadHandler(session *services.SessionService, fileService *services.FileService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		session:     session,
		fileService: fileService,
		logger:      logger,
	}
}

// HandleUpload ingests every file part of the multipart body. A file
// that cannot be read or extracted is skipped; the response lists the
// names that were stored.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.StatusResponse{
			Success: false,
			Message: "Invalid multipart body",
		})
		return
	}

	var uploads []types.Upload
	for _, headers := range form.File {
		for _, header := range headers {
			// Oversized files are rejected per item by the extractor's
			// size cap inside Ingest, so the transcript reset still
			// applies to them.
			src, err := header.Open()
			if err != nil {
				h.logger.Warn("failed to open file part", zap.String("file", header.Filename), zap.Error(err))
				continue
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				h.logger.Warn("failed to read file part", zap.String("file", header.Filename), zap.Error(err))
				continue
			}
			uploads = append(uploads, types.Upload{Name: header.Filename, Data: data})

			if _, err := h.fileService.Archive(header.Filename, data); err != nil {
				h.logger.Warn("failed to archive upload", zap.String("file", header.Filename), zap.Error(err))
			}
		}
	}

	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, types.StatusResponse{
			Success: false,
			Message: "No file provided",
		})
		return
	}

	stored := h.session.Ingest(uploads)
	c.JSON(http.StatusOK, types.StatusResponse{
		Success: true,
		Message: strings.Join(stored, ", "),
	})
}
