package handlers

import (
	"net/http"
	"sort"

	"lexipro-backend/constants"
	"lexipro-backend/models"
	"lexipro-backend/sampledata"

	"github.com/gin-gonic/gin"
)

const recentCaseCount = 5

// DashboardHandler serves the read-only dashboard data
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// LawyerDashboard is the lawyer's landing summary
type LawyerDashboard struct {
	Role        models.Role             `json:"role"`
	ActiveCases int                     `json:"active_cases"`
	ClientCount int                     `json:"client_count"`
	RecentCases []models.Case           `json:"recent_cases"`
	Analytics   models.AnalyticsSummary `json:"analytics"`
}

// ClientDashboard is the client's landing summary
type ClientDashboard struct {
	Role        models.Role          `json:"role"`
	Cases       []models.Case        `json:"cases"`
	ChatHistory []models.ChatMessage `json:"chat_history"`
}

// Dashboard handles GET /api/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
		return
	}

	if ident.Role == models.RoleLawyer {
		all := sampledata.Cases(sampledata.CaseFilter{})
		active := 0
		for _, cs := range all {
			if cs.Status != models.CaseStatusClosed {
				active++
			}
		}
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].OpenedAt.After(all[j].OpenedAt)
		})
		if len(all) > recentCaseCount {
			all = all[:recentCaseCount]
		}

		respondOK(c, http.StatusOK, LawyerDashboard{
			Role:        ident.Role,
			ActiveCases: active,
			ClientCount: len(sampledata.Clients()),
			RecentCases: all,
			Analytics:   sampledata.Analytics(),
		})
		return
	}

	respondOK(c, http.StatusOK, ClientDashboard{
		Role:        ident.Role,
		Cases:       sampledata.Cases(sampledata.CaseFilter{Client: ident.Name}),
		ChatHistory: sampledata.ChatHistory(),
	})
}

// ListCases handles GET /api/cases
func (h *DashboardHandler) ListCases(c *gin.Context) {
	filter := sampledata.CaseFilter{
		Status:   models.CaseStatus(c.Query("status")),
		Category: c.Query("category"),
	}

	// Clients only ever see their own cases.
	if ident, ok := currentIdentity(c); ok && ident.Role == models.RoleClient {
		filter.Client = ident.Name
	}

	respondOK(c, http.StatusOK, sampledata.Cases(filter))
}

// ListClients handles GET /api/clients
func (h *DashboardHandler) ListClients(c *gin.Context) {
	respondOK(c, http.StatusOK, sampledata.Clients())
}

// Analytics handles GET /api/analytics
func (h *DashboardHandler) Analytics(c *gin.Context) {
	respondOK(c, http.StatusOK, sampledata.Analytics())
}

// ListBlocks handles GET /api/ledger/blocks
func (h *DashboardHandler) ListBlocks(c *gin.Context) {
	blocks := sampledata.Blocks()
	respondOK(c, http.StatusOK, gin.H{
		"blocks": blocks,
		"valid":  sampledata.VerifyChain(blocks) < 0,
	})
}

// ListTransactions handles GET /api/ledger/transactions
func (h *DashboardHandler) ListTransactions(c *gin.Context) {
	respondOK(c, http.StatusOK, sampledata.Transactions())
}

// PracticeAreas handles GET /api/practice-areas
func (h *DashboardHandler) PracticeAreas(c *gin.Context) {
	respondOK(c, http.StatusOK, constants.PracticeAreas())
}

// DocumentTypes handles GET /api/document-types
func (h *DashboardHandler) DocumentTypes(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"document_types":     constants.DocumentTypes,
		"story_perspectives": constants.StoryPerspectives,
	})
}
