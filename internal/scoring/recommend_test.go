package scoring

import (
	"testing"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seniorProfile() types.NormalizedProfile {
	return types.NormalizedProfile{
		ExperienceYears:   6,
		EducationCode:     3,
		PerformanceRating: 9,
		CurrentSalary:     125000,
	}
}

func TestRecommend_ReturnsRequestedCount(t *testing.T) {
	e := NewEngine(catalog.Default())

	assert.Len(t, e.Recommend(seniorProfile(), 3), 3)
	assert.Len(t, e.Recommend(seniorProfile(), 5), 5)
	// N above catalog size returns the whole catalog.
	assert.Len(t, e.Recommend(seniorProfile(), 50), 14)
}

func TestRecommend_DefaultsToFive(t *testing.T) {
	e := NewEngine(catalog.Default())

	assert.Len(t, e.Recommend(seniorProfile(), 0), DefaultTopN)
	assert.Len(t, e.Recommend(seniorProfile(), -2), DefaultTopN)
}

func TestRecommend_SortedNonIncreasing(t *testing.T) {
	e := NewEngine(catalog.Default())

	results := e.Recommend(seniorProfile(), 14)
	require.Len(t, results, 14)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	// Three roles with identical bands score identically; the stable sort
	// must preserve catalog order among them.
	doc := []byte(`{
		"roles": [
			{"title": "Role A", "min_salary": 50, "max_salary": 100},
			{"title": "Role B", "min_salary": 50, "max_salary": 100},
			{"title": "Role C", "min_salary": 50, "max_salary": 100}
		]
	}`)
	c, err := catalog.Parse(doc)
	require.NoError(t, err)

	results := NewEngine(c).Recommend(seniorProfile(), 3)
	require.Len(t, results, 3)
	assert.Equal(t, "Role A", results[0].JobTitle)
	assert.Equal(t, "Role B", results[1].JobTitle)
	assert.Equal(t, "Role C", results[2].JobTitle)
}

func TestRecommend_AttachesSkillsAndEstimates(t *testing.T) {
	e := NewEngine(catalog.Default())

	results := e.Recommend(seniorProfile(), 14)
	byTitle := make(map[string]types.MatchResult, len(results))
	for _, r := range results {
		byTitle[r.JobTitle] = r
	}

	se := byTitle["Software Engineer"]
	assert.Equal(t, []string{"Python", "JavaScript", "SQL", "Git"}, se.RequiredSkills)
	assert.Equal(t, []string{"Python", "JavaScript"}, se.MissingSkills)
	assert.Greater(t, se.SalaryEstimate, 0.0)

	// Roles on the generic two-skill fallback report no gap.
	qa := byTitle["QA Engineer"]
	assert.Equal(t, []string{"Communication", "Problem Solving"}, qa.RequiredSkills)
	assert.Empty(t, qa.MissingSkills)
}

func TestRecommendationReason_Thresholds(t *testing.T) {
	p := types.NormalizedProfile{ExperienceYears: 6, PerformanceRating: 9}

	assert.Equal(t,
		"Excellent match! Your 6 years of experience and 9/10 performance rating make you ideal for this role.",
		recommendationReason(p, 85))
	assert.Equal(t,
		"Good match. With 6 years of experience, you meet most requirements for this role.",
		recommendationReason(p, 65))
	assert.Equal(t,
		"Potential growth opportunity. Consider developing skills in this area to improve your match score.",
		recommendationReason(p, 40))

	// Boundary values land on the higher branch.
	assert.Contains(t, recommendationReason(p, 80), "Excellent match")
	assert.Contains(t, recommendationReason(p, 60), "Good match")
}

func TestRecommendationReason_FractionalRating(t *testing.T) {
	p := types.NormalizedProfile{ExperienceYears: 8, PerformanceRating: 7.5}

	assert.Contains(t, recommendationReason(p, 90), "7.5/10")
}

func TestEngine_ScoreUnknownRoleUsesDefaultBand(t *testing.T) {
	e := NewEngine(catalog.Default())
	p := seniorProfile()

	// Unknown title falls back to the (50,100) band instead of failing.
	got := e.Score(p, "Chief Vibes Officer")
	want := MatchScore(p, catalog.DefaultSalaryRange)
	assert.Equal(t, want, got)
}

func TestEngine_ScoreAndEstimateIdempotent(t *testing.T) {
	e := NewEngine(catalog.Default())
	p := seniorProfile()

	assert.Equal(t, e.Score(p, "Data Scientist"), e.Score(p, "Data Scientist"))
	assert.Equal(t, e.Estimate(p, "Data Scientist"), e.Estimate(p, "Data Scientist"))
}
