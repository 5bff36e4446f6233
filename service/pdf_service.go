package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFService extracts plain text from raw PDF bytes.
type PDFService struct {
	maxSize int64 // maximum accepted document size in bytes, 0 = unlimited
	logger  *zap.Logger
}

func NewPDFService(maxSize int64, logger *zap.Logger) *PDFService {
	return &PDFService{
		maxSize: maxSize,
		logger:  logger,
	}
}

// ExtractText reads every page of the document and returns the cleaned
// concatenated text. Pages that cannot be read are skipped; the whole
// document fails only when nothing at all could be extracted.
func (s *PDFService) ExtractText(data []byte) (text string, err error) {
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("document too large: %d bytes (max %d)", len(data), s.maxSize)
	}

	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn("failed to extract text from page",
				zap.Int("page", i),
				zap.Error(err))
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text = s.cleanText(sb.String())
	if text == "" {
		return "", errors.New("no extractable text, document may be scanned or image-based")
	}
	return text, nil
}

func (s *PDFService) cleanText(text string) string {
	replacements := []struct{ old, new string }{
		{"\u0000", ""},   // Null character
		{"\ufffd", ""},   // Unicode replacement character
		{"\u001b", ""},   // Escape character
		{"\r", ""},       // Carriage return
		{"\f", "\n"},     // Form feed to newline
		{"  ", " "},      // Multiple spaces to single space
	}
	cleaned := text
	for _, r := range replacements {
		cleaned = strings.ReplaceAll(cleaned, r.old, r.new)
	}

	return strings.TrimSpace(cleaned)
}
