package handlers

import (
	"net/http"

	"lexipro-backend/logging"
	"lexipro-backend/models"
	"lexipro-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds the services behind the HTTP API
type RouterConfig struct {
	Assistant *service.AssistantService
	Auth      *service.AuthService
	Documents *service.DocumentService
	Logger    *zap.Logger
}

// NewRouter builds the gin engine with every API route registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	assistantHandler := NewAssistantHandler(cfg.Assistant, logger)
	authHandler := NewAuthHandler(cfg.Auth, logger)
	documentHandler := NewDocumentHandler(cfg.Documents, logger)
	dashboardHandler := NewDashboardHandler()

	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		// AI endpoints
		api.POST("/chat", assistantHandler.Chat)
		api.POST("/predict", assistantHandler.Predict)
		api.POST("/documents/generate", assistantHandler.GenerateDocument)
		api.POST("/story", assistantHandler.Story)

		api.GET("/practice-areas", dashboardHandler.PracticeAreas)
		api.GET("/document-types", dashboardHandler.DocumentTypes)

		api.POST("/auth/login", authHandler.Login)
	}

	authed := api.Group("")
	authed.Use(RequireAuth(cfg.Auth))
	{
		authed.GET("/auth/me", authHandler.Me)

		// Dashboard endpoints
		authed.GET("/dashboard", dashboardHandler.Dashboard)
		authed.GET("/cases", dashboardHandler.ListCases)
		authed.GET("/ledger/blocks", dashboardHandler.ListBlocks)
		authed.GET("/ledger/transactions", dashboardHandler.ListTransactions)

		// Saved document endpoints
		authed.POST("/documents", documentHandler.SaveDocument)
		authed.GET("/documents", documentHandler.ListDocuments)
		authed.GET("/documents/:id", documentHandler.GetDocument)
		authed.GET("/documents/:id/download", documentHandler.DownloadDocument)
		authed.DELETE("/documents/:id", documentHandler.DeleteDocument)
	}

	lawyer := authed.Group("")
	lawyer.Use(RequireRole(models.RoleLawyer))
	{
		lawyer.GET("/clients", dashboardHandler.ListClients)
		lawyer.GET("/analytics", dashboardHandler.Analytics)
	}

	return r
}
