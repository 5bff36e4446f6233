package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehoangvu/docchat-be/types"
)

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func postMultipart(router http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleUploadStoresDocuments(t *testing.T) {
	router, session := newTestRouter(t, &stubAI{answer: "unused"})

	body, contentType := multipartBody(t, map[string]string{"a.pdf": "text of a"})
	w := postMultipart(router, body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	var res types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "a.pdf", res.Message)
	assert.Equal(t, []string{"a.pdf"}, session.Documents())
}

func TestHandleUploadPartialBatch(t *testing.T) {
	router, session := newTestRouter(t, &stubAI{answer: "unused"})

	body, contentType := multipartBody(t, map[string]string{
		"good.pdf": "readable text",
		"bad.pdf":  "corrupt",
	})
	w := postMultipart(router, body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	var res types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success, "per-item extraction failure is not a batch failure")
	assert.Equal(t, "good.pdf", res.Message)
	assert.Equal(t, []string{"good.pdf"}, session.Documents())
}

func TestHandleUploadResetsTranscript(t *testing.T) {
	router, session := newTestRouter(t, &stubAI{answer: "fine"})

	body, contentType := multipartBody(t, map[string]string{"a.pdf": "text"})
	postMultipart(router, body, contentType)

	w := postJSON(router, "/ask", `{"question":"hello?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, session.Transcript(), 2)

	body, contentType = multipartBody(t, map[string]string{"b.pdf": "more"})
	postMultipart(router, body, contentType)
	assert.Empty(t, session.Transcript())
}

func TestHandleUploadOversizedFileStillResetsTranscript(t *testing.T) {
	router, session := newTestRouter(t, &stubAI{answer: "fine"})

	body, contentType := multipartBody(t, map[string]string{"a.pdf": "text"})
	postMultipart(router, body, contentType)

	w := postJSON(router, "/ask", `{"question":"hello?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, session.Transcript(), 2)

	// A batch consisting only of a too-large file is still an upload
	// attempt: nothing is stored, but the conversation restarts.
	big := strings.Repeat("x", 2048)
	body, contentType = multipartBody(t, map[string]string{"big.pdf": big})
	w = postMultipart(router, body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	var res types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Empty(t, res.Message)
	assert.Equal(t, []string{"a.pdf"}, session.Documents())
	assert.Empty(t, session.Transcript())
}

func TestHandleUploadNoFiles(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	body, contentType := multipartBody(t, nil)
	w := postMultipart(router, body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var res types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
}

func TestHandleUploadInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t, &stubAI{answer: "unused"})

	w := postMultipart(router, bytes.NewBufferString("not multipart"), "text/plain")

	require.Equal(t, http.StatusBadRequest, w.Code)
}
