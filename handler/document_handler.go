package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	services "github.com/lehoangvu/docchat-be/service"
	"github.com/lehoangvu/docchat-be/types"
)

type DocumentHandler struct {
	uploadDir string
	session   *services.SessionService
}

func NewDocumentHandler(uploadDir string, session *services.SessionService) *DocumentHandler {
	return &DocumentHandler{
		uploadDir: uploadDir,
		session:   session,
	}
}

// HandleListDocuments returns the stored document names in upload order.
func (h *DocumentHandler) HandleListDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, types.DocumentsResponse{
		Success:   true,
		Documents: h.session.Documents(),
	})
}

// ServeDocument streams an archived upload back to the client by its
// original name.
func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.JSON(http.StatusBadRequest, types.StatusResponse{
			Success: false,
			Message: "File parameter is required",
		})
		return
	}

	if filepath.Ext(requestedName) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.StatusResponse{
			Success: false,
			Message: "Only PDF files are allowed",
		})
		return
	}

	actualFile, err := h.findFileWithTimestamp(requestedName)
	if err != nil {
		c.JSON(http.StatusNotFound, types.StatusResponse{
			Success: false,
			Message: "File not found",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", requestedName))
	c.File(filepath.Join(h.uploadDir, actualFile))
}

// findFileWithTimestamp maps a requested name like "report.pdf" to the
// archived "report_1716891023.pdf".
func (h *DocumentHandler) findFileWithTimestamp(requestedName string) (string, error) {
	files, err := os.ReadDir(h.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := strings.TrimSuffix(requestedName, ".pdf")
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".pdf") {
			continue
		}

		nameWithoutExt := strings.TrimSuffix(name, ".pdf")
		if nameWithoutExt == baseName {
			return name, nil
		}

		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 {
			continue
		}

		// Unix timestamps are 10 or 13 digits
		timestampPart := nameWithoutExt[lastUnderscoreIdx+1:]
		fileBaseName := nameWithoutExt[:lastUnderscoreIdx]
		if len(timestampPart) == 10 || len(timestampPart) == 13 {
			if _, err := strconv.ParseInt(timestampPart, 10, 64); err == nil {
				if fileBaseName == baseName {
					return name, nil
				}
			}
		}
	}

	return "", fmt.Errorf("file not found: %s", requestedName)
}
