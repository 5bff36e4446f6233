package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehoangvu/docchat-be/types"
)

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleListDocuments(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	w := get(router, "/documents")
	require.Equal(t, http.StatusOK, w.Code)
	var res types.DocumentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Empty(t, res.Documents)

	body, contentType := multipartBody(t, map[string]string{"a.pdf": "text a"})
	postMultipart(router, body, contentType)
	body, contentType = multipartBody(t, map[string]string{"b.pdf": "text b"})
	postMultipart(router, body, contentType)

	w = get(router, "/documents")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, res.Documents, "upload order is preserved")
}

func TestServeDocument(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	body, contentType := multipartBody(t, map[string]string{"report.pdf": "pdf bytes here"})
	postMultipart(router, body, contentType)

	// The archive stores report_<timestamp>.pdf; the original name
	// still resolves to it.
	w := get(router, "/pdf?file=report.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "pdf bytes here", w.Body.String())
}

func TestServeDocumentMissingParam(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	w := get(router, "/pdf")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var res types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
}

func TestServeDocumentRejectsNonPDF(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	w := get(router, "/pdf?file=notes.txt")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeDocumentNotFound(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	w := get(router, "/pdf?file=ghost.pdf")
	require.Equal(t, http.StatusNotFound, w.Code)
	var res types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
}
