package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lexipro-backend/models"
	"lexipro-backend/repository"
	"lexipro-backend/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDocumentStore struct {
	repository.DocumentStore
}

func (failingDocumentStore) Create(ctx context.Context, doc *models.SavedDocument) error {
	return errors.New("connection refused")
}

func newTestDocuments(t *testing.T) (*DocumentService, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewDocumentService(
		WithDocumentStore(repository.NewMemoryDocumentRepository()),
		WithStorage(st),
	), dir
}

func TestSaveAndOpenDocument(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocuments(t)
	owner := uuid.New()

	saved, err := s.SaveDocument(ctx, SaveDocumentRequest{
		UserID:       owner,
		Title:        "Acme / Beta NDA",
		DocumentType: "Non-Disclosure Agreement",
		Content:      "NON-DISCLOSURE AGREEMENT",
	})
	require.NoError(t, err)
	doc := saved.Document
	assert.Equal(t, "acme-beta-nda.md", doc.Filename)
	assert.Equal(t, "text/markdown; charset=utf-8", doc.MimeType)
	assert.Equal(t, int64(len("NON-DISCLOSURE AGREEMENT")), doc.Size)

	opened, err := s.OpenDocument(ctx, GetDocumentRequest{UserID: owner, ID: doc.ID})
	require.NoError(t, err)
	data, err := io.ReadAll(opened.Content)
	require.NoError(t, err)
	require.NoError(t, opened.Content.Close())
	assert.Equal(t, "NON-DISCLOSURE AGREEMENT", string(data))

	list, err := s.ListDocuments(ctx, ListDocumentsRequest{UserID: owner})
	require.NoError(t, err)
	require.Len(t, list.Documents, 1)
	assert.Equal(t, doc.ID, list.Documents[0].ID)
}

func TestDocumentsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocuments(t)
	owner, stranger := uuid.New(), uuid.New()

	saved, err := s.SaveDocument(ctx, SaveDocumentRequest{UserID: owner, Title: "Will", Content: "I leave..."})
	require.NoError(t, err)
	id := saved.Document.ID

	_, err = s.GetDocument(ctx, GetDocumentRequest{UserID: stranger, ID: id})
	require.ErrorIs(t, err, ErrDocumentNotFound)
	_, err = s.OpenDocument(ctx, GetDocumentRequest{UserID: stranger, ID: id})
	require.ErrorIs(t, err, ErrDocumentNotFound)
	require.ErrorIs(t, s.DeleteDocument(ctx, GetDocumentRequest{UserID: stranger, ID: id}), ErrDocumentNotFound)

	list, err := s.ListDocuments(ctx, ListDocumentsRequest{UserID: stranger})
	require.NoError(t, err)
	assert.Empty(t, list.Documents)

	_, err = s.GetDocument(ctx, GetDocumentRequest{UserID: owner, ID: id})
	require.NoError(t, err)
}

func TestDeleteDocumentRemovesContent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocuments(t)
	owner := uuid.New()

	saved, err := s.SaveDocument(ctx, SaveDocumentRequest{UserID: owner, Title: "Lease", Content: "TERM: 12 months"})
	require.NoError(t, err)
	req := GetDocumentRequest{UserID: owner, ID: saved.Document.ID}

	require.NoError(t, s.DeleteDocument(ctx, req))
	_, err = s.GetDocument(ctx, req)
	require.ErrorIs(t, err, ErrDocumentNotFound)
	require.ErrorIs(t, s.DeleteDocument(ctx, req), ErrDocumentNotFound)
}

func TestSaveDocumentCleansUpWhenRecordFails(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	s := NewDocumentService(WithDocumentStore(failingDocumentStore{}), WithStorage(st))

	_, err = s.SaveDocument(context.Background(), SaveDocumentRequest{UserID: uuid.New(), Title: "NDA", Content: "text"})
	require.Error(t, err)

	var files []string
	require.NoError(t, filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, path)
		}
		return err
	}))
	assert.Empty(t, files)
}

func TestSaveDocumentValidation(t *testing.T) {
	s, _ := newTestDocuments(t)

	_, err := s.SaveDocument(context.Background(), SaveDocumentRequest{UserID: uuid.New(), Content: "x"})
	require.ErrorIs(t, err, ErrMissingField)
	_, err = s.SaveDocument(context.Background(), SaveDocumentRequest{UserID: uuid.New(), Title: "x"})
	require.ErrorIs(t, err, ErrMissingField)
}
