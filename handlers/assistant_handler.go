package handlers

import (
	"net/http"

	"lexipro-backend/models"
	"lexipro-backend/provider"
	"lexipro-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler handles the AI feature endpoints
type AssistantHandler struct {
	assistant *service.AssistantService
	logger    *zap.Logger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *service.AssistantService, logger *zap.Logger) *AssistantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantHandler{assistant: assistant, logger: logger}
}

// ChatRequest represents the request body for the chat assistant
type ChatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
	Stream   *bool                `json:"stream"`
}

// Chat handles POST /api/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	serviceReq := service.ChatRequest{Messages: req.Messages}

	if req.Stream != nil && !*req.Stream {
		result, err := h.assistant.Chat(c.Request.Context(), serviceReq)
		if err != nil {
			respondServiceError(c, h.logger, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"message": result.Message})
		return
	}

	started := false
	start := func() {
		started = true
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Status(http.StatusOK)
	}

	err := h.assistant.StreamChat(c.Request.Context(), serviceReq, func(delta string) error {
		if !started {
			start()
		}
		if _, err := c.Writer.WriteString(delta); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if !started {
			respondServiceError(c, h.logger, err)
			return
		}
		// Headers are gone; all that is left is to cut the stream short.
		h.logger.Error("chat stream aborted", zap.Error(err))
		return
	}
	if !started {
		start()
	}
}

// PredictRequest represents the request body for the outcome predictor
type PredictRequest struct {
	CaseType        string `json:"caseType"`
	CaseDescription string `json:"caseDescription"`
	RelevantLaws    string `json:"relevantLaws"`
}

// PredictResponse is the success payload of the outcome predictor
type PredictResponse struct {
	Prediction string                    `json:"prediction"`
	Candidates []provider.MaskPrediction `json:"candidates"`
	Result     *models.PredictionResult  `json:"result,omitempty"`
}

// Predict handles POST /api/predict
func (h *AssistantHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.assistant.Predict(c.Request.Context(), service.PredictRequest{
		CaseType:        req.CaseType,
		CaseDescription: req.CaseDescription,
		RelevantLaws:    req.RelevantLaws,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, PredictResponse{
		Prediction: result.Prediction,
		Candidates: result.Candidates,
		Result:     result.Result,
	})
}

// GenerateDocumentRequest represents the request body for the document generator
type GenerateDocumentRequest struct {
	DocumentType string `json:"documentType"`
	Details      string `json:"details"`
	Parties      string `json:"parties"`
	Jurisdiction string `json:"jurisdiction"`
}

// GenerateDocument handles POST /api/documents/generate
func (h *AssistantHandler) GenerateDocument(c *gin.Context) {
	var req GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.assistant.GenerateDocument(c.Request.Context(), service.DocumentRequest{
		DocumentType: req.DocumentType,
		Details:      req.Details,
		Parties:      req.Parties,
		Jurisdiction: req.Jurisdiction,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"document": result.Document})
}

// StoryRequest represents the request body for story mode
type StoryRequest struct {
	Scenario    string `json:"scenario"`
	Perspective string `json:"perspective"`
}

// Story handles POST /api/story
func (h *AssistantHandler) Story(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.assistant.Story(c.Request.Context(), service.StoryRequest{
		Scenario:    req.Scenario,
		Perspective: req.Perspective,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"story":       result.Story,
		"perspective": result.Perspective,
	})
}
