package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"lexipro-backend/models"
	"lexipro-backend/repository"
	"lexipro-backend/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDocumentNotFound = errors.New("document not found")

const maxListLimit = 100

// DocumentService keeps generated documents a user chose to save
type DocumentService struct {
	docs    repository.DocumentStore
	storage storage.Storage
	logger  *zap.Logger
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// WithDocumentStore sets the metadata store
func WithDocumentStore(store repository.DocumentStore) DocumentServiceOption {
	return func(s *DocumentService) {
		s.docs = store
	}
}

// WithStorage sets the blob storage backend
func WithStorage(st storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = st
	}
}

// WithDocumentLogger sets the logger
func WithDocumentLogger(l *zap.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = l
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DocumentService) ready() error {
	if s.docs == nil {
		return errors.New("document store not set")
	}
	if s.storage == nil {
		return errors.New("storage not set")
	}
	return nil
}

// SaveDocumentRequest represents a request to keep a generated document
type SaveDocumentRequest struct {
	UserID       uuid.UUID
	Title        string
	DocumentType string
	Content      string
}

// SaveDocumentResult represents the stored document
type SaveDocumentResult struct {
	Document *models.SavedDocument
}

var titleChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

func documentFilename(title string) string {
	name := strings.Trim(titleChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if name == "" {
		name = "document"
	}
	return name + ".md"
}

// SaveDocument writes the content to storage, then records its metadata
func (s *DocumentService) SaveDocument(ctx context.Context, req SaveDocumentRequest) (*SaveDocumentResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, missingField("title")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, missingField("content")
	}

	doc := &models.SavedDocument{
		ID:           uuid.New(),
		UserID:       req.UserID,
		Title:        strings.TrimSpace(req.Title),
		DocumentType: strings.TrimSpace(req.DocumentType),
		Filename:     documentFilename(req.Title),
		Size:         int64(len(req.Content)),
	}
	doc.MimeType = storage.ContentType(doc.Filename)

	path, err := s.storage.Upload(ctx, doc.ID, doc.Filename, strings.NewReader(req.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	doc.StoragePath = path

	if err := s.docs.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			s.logger.Warn("failed to clean up stored document", zap.String("path", path), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	s.logger.Info("document saved",
		zap.String("document_id", doc.ID.String()),
		zap.String("user_id", req.UserID.String()),
		zap.Int64("size", doc.Size))

	return &SaveDocumentResult{Document: doc}, nil
}

// ListDocumentsRequest represents a request to list a user's documents
type ListDocumentsRequest struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// ListDocumentsResult represents the listed documents
type ListDocumentsResult struct {
	Documents []*models.SavedDocument
}

// ListDocuments lists a user's documents, newest first
func (s *DocumentService) ListDocuments(ctx context.Context, req ListDocumentsRequest) (*ListDocumentsResult, error) {
	if s.docs == nil {
		return nil, errors.New("document store not set")
	}
	if req.Limit <= 0 || req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	docs, err := s.docs.ListByUserID(ctx, req.UserID, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	return &ListDocumentsResult{Documents: docs}, nil
}

// GetDocumentRequest identifies a document owned by a user
type GetDocumentRequest struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// GetDocumentResult represents a document
type GetDocumentResult struct {
	Document *models.SavedDocument
}

// GetDocument returns a document; documents owned by someone else are reported as not found
func (s *DocumentService) GetDocument(ctx context.Context, req GetDocumentRequest) (*GetDocumentResult, error) {
	if s.docs == nil {
		return nil, errors.New("document store not set")
	}

	doc, err := s.docs.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	if doc.UserID != req.UserID {
		return nil, ErrDocumentNotFound
	}
	return &GetDocumentResult{Document: doc}, nil
}

// OpenDocumentResult carries a document and its content
type OpenDocumentResult struct {
	Document *models.SavedDocument
	Content  io.ReadCloser
}

// OpenDocument returns a reader over the document content. The caller closes Content.
func (s *DocumentService) OpenDocument(ctx context.Context, req GetDocumentRequest) (*OpenDocumentResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	res, err := s.GetDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	rc, err := s.storage.Download(ctx, res.Document.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			s.logger.Warn("document metadata has no stored content", zap.String("document_id", req.ID.String()))
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return &OpenDocumentResult{Document: res.Document, Content: rc}, nil
}

// DeleteDocument removes the metadata, then the stored content
func (s *DocumentService) DeleteDocument(ctx context.Context, req GetDocumentRequest) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.GetDocument(ctx, req)
	if err != nil {
		return err
	}

	if err := s.docs.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}

	if err := s.storage.Delete(ctx, res.Document.StoragePath); err != nil {
		s.logger.Warn("failed to delete stored document", zap.String("path", res.Document.StoragePath), zap.Error(err))
	}
	return nil
}
