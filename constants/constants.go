// Package constants holds the fixed option lists shared by the pages and the API.
package constants

// PracticeArea is a service line shown on the marketing pages
type PracticeArea struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var practiceAreas = []PracticeArea{
	{Slug: "family", Name: "Family Law", Description: "Divorce, custody, adoption and support agreements."},
	{Slug: "criminal", Name: "Criminal Defense", Description: "Representation from arrest through trial and appeal."},
	{Slug: "corporate", Name: "Corporate Law", Description: "Formation, contracts, compliance and mergers."},
	{Slug: "real-estate", Name: "Real Estate", Description: "Purchases, leases, title disputes and zoning."},
	{Slug: "immigration", Name: "Immigration", Description: "Visas, green cards, naturalisation and removal defense."},
	{Slug: "intellectual-property", Name: "Intellectual Property", Description: "Trademarks, copyrights, patents and licensing."},
	{Slug: "employment", Name: "Employment Law", Description: "Wrongful termination, discrimination and wage claims."},
	{Slug: "personal-injury", Name: "Personal Injury", Description: "Accidents, malpractice and insurance claims."},
}

// PracticeAreas returns a copy of the practice area list
func PracticeAreas() []PracticeArea {
	out := make([]PracticeArea, len(practiceAreas))
	copy(out, practiceAreas)
	return out
}

// DocumentTypes offered by the document generator
var DocumentTypes = []string{
	"Non-Disclosure Agreement",
	"Employment Contract",
	"Lease Agreement",
	"Power of Attorney",
	"Last Will and Testament",
	"Demand Letter",
	"Cease and Desist Letter",
	"Service Agreement",
}

// Story mode perspectives
const (
	PerspectiveClient  = "client"
	PerspectiveLawyer  = "lawyer"
	PerspectiveJudge   = "judge"
	PerspectiveWitness = "witness"
)

// StoryPerspectives lists the accepted story mode perspectives
var StoryPerspectives = []string{PerspectiveClient, PerspectiveLawyer, PerspectiveJudge, PerspectiveWitness}

// ValidPerspective reports whether p is a known story perspective
func ValidPerspective(p string) bool {
	for _, known := range StoryPerspectives {
		if p == known {
			return true
		}
	}
	return false
}
