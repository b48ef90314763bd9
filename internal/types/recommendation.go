package types

// MatchResult is a single role recommendation computed for a profile.
// Results are ephemeral: computed per request and returned in ranked order.
type MatchResult struct {
	JobTitle             string   `json:"job_title"`
	MatchScore           float64  `json:"match_score"`
	SalaryEstimate       float64  `json:"salary_estimate"`
	RequiredSkills       []string `json:"required_skills"`
	MissingSkills        []string `json:"missing_skills"`
	RecommendationReason string   `json:"recommendation_reason"`
}

// RoleInfo describes a catalog role for the /job-roles/ listing.
// Salaries are in currency units.
type RoleInfo struct {
	Title     string  `json:"title"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
	Category  string  `json:"category"`
}

// SkillInfo is a flattened taxonomy entry for the /skills/ listing.
type SkillInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
