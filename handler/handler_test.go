package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	services "github.com/lehoangvu/docchat-be/service"
	"github.com/lehoangvu/docchat-be/types"
)

// stubExtractor treats the upload bytes as the extracted text. It
// mirrors PDFService's per-item failures: the literal content
// "corrupt" is malformed, and anything over 1 KiB is too large.
type stubExtractor struct{}

func (stubExtractor) ExtractText(data []byte) (string, error) {
	if string(data) == "corrupt" {
		return "", errors.New("malformed pdf")
	}
	if len(data) > 1024 {
		return "", errors.New("document too large")
	}
	return string(data), nil
}

type stubAI struct {
	answer string
	err    error
}

func (s *stubAI) Chat(ctx context.Context, prompt string, messages []types.Message) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func newTestRouter(t *testing.T, ai services.AIService) (*gin.Engine, *services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	session := services.NewSessionService(stubExtractor{}, ai, 0, log)
	uploadDir := t.TempDir()
	fileService, err := services.NewFileService(uploadDir, log)
	require.NoError(t, err)

	uploadHandler := NewUploadHandler(session, fileService, log)
	askHandler := NewAskHandler(session, log)
	documentHandler := NewDocumentHandler(uploadDir, session)

	router := gin.New()
	router.POST("/upload", uploadHandler.HandleUpload)
	router.POST("/ask", askHandler.HandleAsk)
	router.GET("/documents", documentHandler.HandleListDocuments)
	router.GET("/pdf", documentHandler.ServeDocument)
	return router, session
}
