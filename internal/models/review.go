package models

// Review represents one anonymized performance-review record submitted
// during the session. Records are immutable once stored.
type Review struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	Role             string `json:"role"`   // "Manager", "Analyst" or "Engineer"
	Gender           string `json:"gender"` // "F" or "M" (demo grouping attribute)
	KPIRating        int    `json:"kpi_rating"`
	CompetencyRating int    `json:"competency_rating"`
	InitiativeRating int    `json:"initiative_rating"`
	OverallRating    int    `json:"overall_rating"`
	Comment          string `json:"comment"`
}

// Flag is a derived join between a stored review and a matched lexicon rule.
// Flags are recomputed on every request and never stored.
type Flag struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	Phrase     string `json:"phrase"`
	Category   string `json:"category"`
	Tip        string `json:"tip"`
}
