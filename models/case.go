package models

import "time"

// CaseStatus represents the status of a case
type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusPending    CaseStatus = "pending"
	CaseStatusClosed     CaseStatus = "closed"
)

// Case is a dashboard display record
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Client      string     `json:"client"`
	Status      CaseStatus `json:"status"`
	Category    string     `json:"category"`
	Lawyer      string     `json:"lawyer"`
	OpenedAt    time.Time  `json:"opened_at"`
	NextHearing *time.Time `json:"next_hearing,omitempty"`
}

// Client is a dashboard display record
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CaseCount int    `json:"case_count"`
}

// MonthlyCount is one point of a monthly series
type MonthlyCount struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// CategoryShare is the number of cases in one practice area
type CategoryShare struct {
	Category string `json:"category"`
	Cases    int    `json:"cases"`
}

// AnalyticsSummary feeds the lawyer dashboard charts
type AnalyticsSummary struct {
	CasesPerMonth   []MonthlyCount  `json:"cases_per_month"`
	RevenuePerMonth []MonthlyCount  `json:"revenue_per_month"`
	WinRate         float64         `json:"win_rate"`
	Categories      []CategoryShare `json:"categories"`
}
