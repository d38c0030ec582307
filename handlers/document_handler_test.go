package handlers

import (
	"net/http"
	"testing"

	"lexipro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveTestDocument(t *testing.T, s *testServer, token string) models.SavedDocument {
	t.Helper()
	w := s.do(http.MethodPost, "/api/documents", token, map[string]string{
		"title":        "Smith Lease Review",
		"documentType": "Lease Agreement",
		"content":      "LEASE AGREEMENT\nTerm: 12 months.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var doc models.SavedDocument
	decodeData(t, w, &doc)
	return doc
}

func TestSaveAndDownloadDocument(t *testing.T) {
	s := newTestServer(t)
	doc := saveTestDocument(t, s, s.clientToken)
	assert.Equal(t, "smith-lease-review.md", doc.Filename)

	var listed []models.SavedDocument
	decodeData(t, s.do(http.MethodGet, "/api/documents", s.clientToken, nil), &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, doc.ID, listed[0].ID)

	var got models.SavedDocument
	w := s.do(http.MethodGet, "/api/documents/"+doc.ID.String(), s.clientToken, nil)
	decodeData(t, w, &got)
	assert.Equal(t, "Lease Agreement", got.DocumentType)
	assert.NotContains(t, w.Body.String(), "storage")

	w = s.do(http.MethodGet, "/api/documents/"+doc.ID.String()+"/download", s.clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "LEASE AGREEMENT\nTerm: 12 months.", w.Body.String())
	assert.Equal(t, `attachment; filename="smith-lease-review.md"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestDocumentsHiddenFromOtherUsers(t *testing.T) {
	s := newTestServer(t)
	doc := saveTestDocument(t, s, s.clientToken)
	path := "/api/documents/" + doc.ID.String()

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, path},
		{http.MethodGet, path + "/download"},
		{http.MethodDelete, path},
	} {
		w := s.do(req.method, req.path, s.lawyerToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, req.method+" "+req.path)
		assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, w).Code)
	}

	var listed []models.SavedDocument
	decodeData(t, s.do(http.MethodGet, "/api/documents", s.lawyerToken, nil), &listed)
	assert.Empty(t, listed)
}

func TestDeleteDocument(t *testing.T) {
	s := newTestServer(t)
	doc := saveTestDocument(t, s, s.clientToken)
	path := "/api/documents/" + doc.ID.String()

	w := s.do(http.MethodDelete, path, s.clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, path, s.clientToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentBadInput(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/documents/not-a-uuid", s.clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, w).Code)

	w = s.do(http.MethodPost, "/api/documents", s.clientToken, map[string]string{"title": "Empty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Error, "content")
}
