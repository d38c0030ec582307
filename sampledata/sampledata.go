// Package sampledata serves the static records behind the dashboards.
package sampledata

import (
	"strings"
	"time"

	"lexipro-backend/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

var cases = []models.Case{
	{ID: "CASE-1001", Title: "Smith v. Horizon Properties", Client: "John Smith", Status: models.CaseStatusInProgress, Category: "Real Estate", Lawyer: "Sarah Mitchell", OpenedAt: day(2024, time.January, 15), NextHearing: dayPtr(2024, time.July, 8)},
	{ID: "CASE-1002", Title: "Estate of Margaret Lee", Client: "Emily Lee", Status: models.CaseStatusOpen, Category: "Family Law", Lawyer: "David Chen", OpenedAt: day(2024, time.February, 3)},
	{ID: "CASE-1003", Title: "State v. Rodriguez", Client: "Carlos Rodriguez", Status: models.CaseStatusPending, Category: "Criminal Defense", Lawyer: "Sarah Mitchell", OpenedAt: day(2024, time.February, 20), NextHearing: dayPtr(2024, time.June, 21)},
	{ID: "CASE-1004", Title: "TechNova Trademark Dispute", Client: "TechNova Inc.", Status: models.CaseStatusInProgress, Category: "Intellectual Property", Lawyer: "Priya Patel", OpenedAt: day(2024, time.March, 11), NextHearing: dayPtr(2024, time.August, 2)},
	{ID: "CASE-1005", Title: "Johnson Wrongful Termination", Client: "Alicia Johnson", Status: models.CaseStatusClosed, Category: "Employment Law", Lawyer: "David Chen", OpenedAt: day(2023, time.October, 2)},
	{ID: "CASE-1006", Title: "Green Valley Zoning Appeal", Client: "John Smith", Status: models.CaseStatusOpen, Category: "Real Estate", Lawyer: "Priya Patel", OpenedAt: day(2024, time.April, 5)},
	{ID: "CASE-1007", Title: "Nguyen Visa Petition", Client: "Linh Nguyen", Status: models.CaseStatusInProgress, Category: "Immigration", Lawyer: "Sarah Mitchell", OpenedAt: day(2024, time.April, 18)},
	{ID: "CASE-1008", Title: "Baker Auto Accident Claim", Client: "Thomas Baker", Status: models.CaseStatusClosed, Category: "Personal Injury", Lawyer: "David Chen", OpenedAt: day(2023, time.August, 29)},
}

var clients = []models.Client{
	{ID: "CL-201", Name: "John Smith", Email: "john.smith@example.com", Phone: "+1 555 0101"},
	{ID: "CL-202", Name: "Emily Lee", Email: "emily.lee@example.com", Phone: "+1 555 0102"},
	{ID: "CL-203", Name: "Carlos Rodriguez", Email: "c.rodriguez@example.com", Phone: "+1 555 0103"},
	{ID: "CL-204", Name: "TechNova Inc.", Email: "legal@technova.example.com", Phone: "+1 555 0104"},
	{ID: "CL-205", Name: "Alicia Johnson", Email: "alicia.j@example.com", Phone: "+1 555 0105"},
	{ID: "CL-206", Name: "Linh Nguyen", Email: "linh.nguyen@example.com", Phone: "+1 555 0106"},
	{ID: "CL-207", Name: "Thomas Baker", Email: "tbaker@example.com", Phone: "+1 555 0107"},
}

var chatHistory = []models.ChatMessage{
	{Role: models.ChatRoleUser, Content: "What should I bring to my first consultation?", Timestamp: dayPtr(2024, time.May, 2)},
	{Role: models.ChatRoleAssistant, Content: "Bring any contracts, letters, photos and a timeline of events. A list of questions helps too.", Timestamp: dayPtr(2024, time.May, 2)},
	{Role: models.ChatRoleUser, Content: "How long does a small claims case usually take?", Timestamp: dayPtr(2024, time.May, 9)},
	{Role: models.ChatRoleAssistant, Content: "Most small claims cases are heard within two to three months of filing, depending on the court's calendar.", Timestamp: dayPtr(2024, time.May, 9)},
}

// CaseFilter narrows Cases; empty fields match everything
type CaseFilter struct {
	Status   models.CaseStatus
	Category string
	Client   string
}

func (f CaseFilter) match(c models.Case) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
		return false
	}
	if f.Client != "" && !strings.EqualFold(c.Client, f.Client) {
		return false
	}
	return true
}

// Cases returns the sample cases matching filter
func Cases(filter CaseFilter) []models.Case {
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if filter.match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Clients returns the sample clients with their case counts filled in
func Clients() []models.Client {
	counts := make(map[string]int)
	for _, c := range cases {
		counts[c.Client]++
	}

	out := make([]models.Client, len(clients))
	copy(out, clients)
	for i := range out {
		out[i].CaseCount = counts[out[i].Name]
	}
	return out
}

// ChatHistory returns the sample assistant conversation
func ChatHistory() []models.ChatMessage {
	out := make([]models.ChatMessage, len(chatHistory))
	copy(out, chatHistory)
	return out
}

// Analytics summarises the sample cases for the lawyer dashboard
func Analytics() models.AnalyticsSummary {
	summary := models.AnalyticsSummary{
		CasesPerMonth: []models.MonthlyCount{
			{Month: "Jan", Value: 12}, {Month: "Feb", Value: 15}, {Month: "Mar", Value: 11},
			{Month: "Apr", Value: 18}, {Month: "May", Value: 21}, {Month: "Jun", Value: 17},
		},
		RevenuePerMonth: []models.MonthlyCount{
			{Month: "Jan", Value: 42000}, {Month: "Feb", Value: 51500}, {Month: "Mar", Value: 39800},
			{Month: "Apr", Value: 60200}, {Month: "May", Value: 71000}, {Month: "Jun", Value: 58400},
		},
		WinRate: 87.5,
	}

	byCategory := make(map[string]int)
	var order []string
	for _, c := range cases {
		if _, seen := byCategory[c.Category]; !seen {
			order = append(order, c.Category)
		}
		byCategory[c.Category]++
	}
	for _, category := range order {
		summary.Categories = append(summary.Categories, models.CategoryShare{Category: category, Cases: byCategory[category]})
	}

	return summary
}
