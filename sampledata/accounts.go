package sampledata

import "lexipro-backend/models"

// Account is a login seeded when the server runs on in-memory repositories.
// Names match the sample cases so client dashboards are populated.
type Account struct {
	Email    string
	Name     string
	Role     models.Role
	FirmName string
}

var accounts = []Account{
	{Email: "sarah.mitchell@lexipro.dev", Name: "Sarah Mitchell", Role: models.RoleLawyer, FirmName: "LexiPro Legal"},
	{Email: "john.smith@example.com", Name: "John Smith", Role: models.RoleClient},
}

// Accounts returns the demo logins
func Accounts() []Account {
	out := make([]Account, len(accounts))
	copy(out, accounts)
	return out
}
