package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"lexipro-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentHandler handles HTTP requests for saved documents
type DocumentHandler struct {
	documents *service.DocumentService
	logger    *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentHandler{documents: documents, logger: logger}
}

// SaveDocumentRequest represents the request body for saving a document
type SaveDocumentRequest struct {
	Title        string `json:"title"`
	DocumentType string `json:"documentType"`
	Content      string `json:"content"`
}

// SaveDocument handles POST /api/documents
func (h *DocumentHandler) SaveDocument(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	var req SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.documents.SaveDocument(c.Request.Context(), service.SaveDocumentRequest{
		UserID:       ident.UserID,
		Title:        req.Title,
		DocumentType: req.DocumentType,
		Content:      req.Content,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusCreated, result.Document)
}

// ListDocuments handles GET /api/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.documents.ListDocuments(c.Request.Context(), service.ListDocumentsRequest{
		UserID: ident.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, result.Documents)
}

func (h *DocumentHandler) documentRequest(c *gin.Context) (service.GetDocumentRequest, bool) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return service.GetDocumentRequest{}, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid document ID format")
		return service.GetDocumentRequest{}, false
	}

	return service.GetDocumentRequest{UserID: ident.UserID, ID: id}, true
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	req, ok := h.documentRequest(c)
	if !ok {
		return
	}

	result, err := h.documents.GetDocument(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, result.Document)
}

// DownloadDocument handles GET /api/documents/:id/download
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	req, ok := h.documentRequest(c)
	if !ok {
		return
	}

	result, err := h.documents.OpenDocument(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer result.Content.Close()

	doc := result.Document
	c.DataFromReader(http.StatusOK, doc.Size, doc.MimeType, result.Content, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.Filename),
	})
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	req, ok := h.documentRequest(c)
	if !ok {
		return
	}

	if err := h.documents.DeleteDocument(c.Request.Context(), req); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"id": req.ID})
}
