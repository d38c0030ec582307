package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexipro-backend/constants"
	"lexipro-backend/models"
	"lexipro-backend/provider"

	"go.uber.org/zap"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidField       = errors.New("invalid field")
	ErrProviderFailed     = errors.New("provider call failed")
	ErrProviderNotEnabled = errors.New("provider not configured")
)

// AssistantService forwards user text to the AI providers
type AssistantService struct {
	chatModel           provider.ChatModel
	fillMasker          provider.FillMasker
	predictionGenerator provider.TextGenerator
	documentGenerator   provider.TextGenerator
	storyGenerator      provider.TextGenerator
	logger              *zap.Logger
}

// AssistantServiceOption is a functional option for AssistantService
type AssistantServiceOption func(*AssistantService)

// WithChatModel sets the model behind the chat assistant
func WithChatModel(m provider.ChatModel) AssistantServiceOption {
	return func(s *AssistantService) {
		s.chatModel = m
	}
}

// WithFillMasker sets the first step of the outcome predictor
func WithFillMasker(m provider.FillMasker) AssistantServiceOption {
	return func(s *AssistantService) {
		s.fillMasker = m
	}
}

// WithPredictionGenerator sets the second step of the outcome predictor
func WithPredictionGenerator(g provider.TextGenerator) AssistantServiceOption {
	return func(s *AssistantService) {
		s.predictionGenerator = g
	}
}

// WithDocumentGenerator sets the model behind the document generator
func WithDocumentGenerator(g provider.TextGenerator) AssistantServiceOption {
	return func(s *AssistantService) {
		s.documentGenerator = g
	}
}

// WithStoryGenerator sets the model behind story mode
func WithStoryGenerator(g provider.TextGenerator) AssistantServiceOption {
	return func(s *AssistantService) {
		s.storyGenerator = g
	}
}

// WithAssistantLogger sets the logger
func WithAssistantLogger(l *zap.Logger) AssistantServiceOption {
	return func(s *AssistantService) {
		s.logger = l
	}
}

// NewAssistantService creates a new assistant service
func NewAssistantService(opts ...AssistantServiceOption) *AssistantService {
	s := &AssistantService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

func providerFailed(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrProviderFailed, step, err)
}

// ChatRequest represents a chat assistant request
type ChatRequest struct {
	Messages []models.ChatMessage
}

// ChatResult represents the assistant reply
type ChatResult struct {
	Message string
}

func (s *AssistantService) conversation(req ChatRequest) ([]provider.Message, error) {
	if len(req.Messages) == 0 {
		return nil, missingField("messages")
	}

	out := make([]provider.Message, 0, len(req.Messages)+1)
	out = append(out, provider.Message{Role: string(models.ChatRoleSystem), Content: assistantSystemPrompt})
	for i, m := range req.Messages {
		if strings.TrimSpace(m.Content) == "" {
			return nil, missingField(fmt.Sprintf("messages[%d].content", i))
		}
		role := m.Role
		if role == "" {
			role = models.ChatRoleUser
		}
		if role != models.ChatRoleUser && role != models.ChatRoleAssistant {
			return nil, fmt.Errorf("%w: messages[%d].role must be user or assistant", ErrInvalidField, i)
		}
		out = append(out, provider.Message{Role: string(role), Content: m.Content})
	}
	return out, nil
}

// Chat returns the assistant's reply to the conversation
func (s *AssistantService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	messages, err := s.conversation(req)
	if err != nil {
		return nil, err
	}
	if s.chatModel == nil {
		return nil, fmt.Errorf("%w: chat", ErrProviderNotEnabled)
	}

	reply, err := s.chatModel.Chat(ctx, messages)
	if err != nil {
		s.logger.Error("chat failed", zap.Error(err))
		return nil, providerFailed("chat", err)
	}

	return &ChatResult{Message: reply}, nil
}

// StreamChat validates the conversation and forwards reply fragments to onDelta
func (s *AssistantService) StreamChat(ctx context.Context, req ChatRequest, onDelta func(string) error) error {
	messages, err := s.conversation(req)
	if err != nil {
		return err
	}
	if s.chatModel == nil {
		return fmt.Errorf("%w: chat", ErrProviderNotEnabled)
	}

	if err := s.chatModel.ChatStream(ctx, messages, onDelta); err != nil {
		s.logger.Error("chat stream failed", zap.Error(err))
		return providerFailed("chat stream", err)
	}
	return nil
}

// PredictRequest represents an outcome prediction request
type PredictRequest struct {
	CaseType        string
	CaseDescription string
	RelevantLaws    string
}

// PredictResult carries the raw model reply and what could be parsed from it
type PredictResult struct {
	Prediction string                   // second-step reply, unmodified
	Candidates []provider.MaskPrediction // first-step fill-mask ranking
	Result     *models.PredictionResult // nil when Prediction is not parseable JSON
}

// Predict runs the fill-mask step, then the generative follow-up
func (s *AssistantService) Predict(ctx context.Context, req PredictRequest) (*PredictResult, error) {
	switch {
	case strings.TrimSpace(req.CaseType) == "":
		return nil, missingField("caseType")
	case strings.TrimSpace(req.CaseDescription) == "":
		return nil, missingField("caseDescription")
	case strings.TrimSpace(req.RelevantLaws) == "":
		return nil, missingField("relevantLaws")
	}
	if s.fillMasker == nil || s.predictionGenerator == nil {
		return nil, fmt.Errorf("%w: prediction", ErrProviderNotEnabled)
	}

	candidates, err := s.fillMasker.FillMask(ctx, buildFillMaskPrompt(req))
	if err != nil {
		s.logger.Error("prediction fill-mask step failed", zap.Error(err))
		return nil, providerFailed("fill-mask", err)
	}

	text, err := s.predictionGenerator.Generate(ctx, provider.GenerateRequest{
		System:      predictionSystemPrompt,
		Prompt:      buildPredictionPrompt(req, candidates),
		Temperature: 0.3,
	})
	if err != nil {
		s.logger.Error("prediction generation step failed", zap.Error(err))
		return nil, providerFailed("prediction", err)
	}

	return &PredictResult{
		Prediction: text,
		Candidates: candidates,
		Result:     parsePrediction(text),
	}, nil
}

// DocumentRequest represents a document generator request
type DocumentRequest struct {
	DocumentType string
	Details      string
	Parties      string
	Jurisdiction string
}

// DocumentResult holds the generated document text
type DocumentResult struct {
	Document string
}

// GenerateDocument drafts a legal document from the user's details
func (s *AssistantService) GenerateDocument(ctx context.Context, req DocumentRequest) (*DocumentResult, error) {
	if strings.TrimSpace(req.DocumentType) == "" {
		return nil, missingField("documentType")
	}
	if strings.TrimSpace(req.Details) == "" {
		return nil, missingField("details")
	}
	if s.documentGenerator == nil {
		return nil, fmt.Errorf("%w: documents", ErrProviderNotEnabled)
	}

	text, err := s.documentGenerator.Generate(ctx, provider.GenerateRequest{
		System: documentSystemPrompt,
		Prompt: buildDocumentPrompt(req),
	})
	if err != nil {
		s.logger.Error("document generation failed", zap.String("document_type", req.DocumentType), zap.Error(err))
		return nil, providerFailed("document", err)
	}

	return &DocumentResult{Document: text}, nil
}

// StoryRequest represents a story mode request
type StoryRequest struct {
	Scenario    string
	Perspective string
}

// StoryResult holds the generated story
type StoryResult struct {
	Story       string
	Perspective string
}

// Story narrates the user's legal situation
func (s *AssistantService) Story(ctx context.Context, req StoryRequest) (*StoryResult, error) {
	if strings.TrimSpace(req.Scenario) == "" {
		return nil, missingField("scenario")
	}
	if req.Perspective == "" {
		req.Perspective = constants.PerspectiveClient
	}
	if !constants.ValidPerspective(req.Perspective) {
		return nil, fmt.Errorf("%w: perspective must be one of %s", ErrInvalidField, strings.Join(constants.StoryPerspectives, ", "))
	}
	if s.storyGenerator == nil {
		return nil, fmt.Errorf("%w: story", ErrProviderNotEnabled)
	}

	text, err := s.storyGenerator.Generate(ctx, provider.GenerateRequest{
		System:      storySystemPrompt,
		Prompt:      buildStoryPrompt(req),
		Temperature: 0.9,
	})
	if err != nil {
		s.logger.Error("story generation failed", zap.Error(err))
		return nil, providerFailed("story", err)
	}

	return &StoryResult{Story: text, Perspective: req.Perspective}, nil
}
