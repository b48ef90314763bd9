package scoring

import (
	"fmt"
	"sort"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/skills"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// Rationale thresholds on the 0-100 match score.
const (
	excellentMatchThreshold = 80
	goodMatchThreshold      = 60
)

// DefaultTopN is the number of recommendations returned when the caller does
// not ask for a specific count.
const DefaultTopN = 5

// Engine scores profiles against the role catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a scoring engine over a role catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Score computes the match score for a single role title. Unknown titles use
// the default salary band rather than failing.
func (e *Engine) Score(p types.NormalizedProfile, roleTitle string) float64 {
	return MatchScore(p, e.catalog.SalaryRange(roleTitle))
}

// Estimate computes the salary estimate for a single role title.
func (e *Engine) Estimate(p types.NormalizedProfile, roleTitle string) float64 {
	return EstimateSalary(p, e.catalog.SalaryRange(roleTitle))
}

// Recommend scores the profile against every catalog role and returns the
// top N results ordered by descending match score. Ties keep catalog order;
// the sort must stay stable for reproducible output.
func (e *Engine) Recommend(p types.NormalizedProfile, topN int) []types.MatchResult {
	if topN <= 0 {
		topN = DefaultTopN
	}

	roles := e.catalog.Roles()
	results := make([]types.MatchResult, 0, len(roles))
	for _, role := range roles {
		score := e.Score(p, role)
		results = append(results, types.MatchResult{
			JobTitle:             role,
			MatchScore:           score,
			SalaryEstimate:       e.Estimate(p, role),
			RequiredSkills:       skills.Required(e.catalog, role),
			MissingSkills:        skills.Missing(e.catalog, p, role),
			RecommendationReason: recommendationReason(p, score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if topN > len(results) {
		topN = len(results)
	}
	return results[:topN]
}

// recommendationReason selects the rationale text by score threshold. Only
// the excellent and good branches cite profile specifics.
func recommendationReason(p types.NormalizedProfile, score float64) string {
	switch {
	case score >= excellentMatchThreshold:
		return fmt.Sprintf(
			"Excellent match! Your %d years of experience and %g/10 performance rating make you ideal for this role.",
			p.ExperienceYears, p.PerformanceRating,
		)
	case score >= goodMatchThreshold:
		return fmt.Sprintf(
			"Good match. With %d years of experience, you meet most requirements for this role.",
			p.ExperienceYears,
		)
	default:
		return "Potential growth opportunity. Consider developing skills in this area to improve your match score."
	}
}
