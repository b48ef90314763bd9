package scoring

import (
	"testing"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMatchScore_StrongProfileClampsTo100(t *testing.T) {
	// PhD, 6 years experience, 9/10 rating, salary near the Technical Lead
	// midpoint: terms 30 + 30 + 22.5 + ~18.52 exceed 100 and clamp.
	p := types.NormalizedProfile{
		ExperienceYears:   6,
		EducationCode:     3,
		PerformanceRating: 9,
		CurrentSalary:     125000,
	}
	band := catalog.SalaryRange{Min: 90, Max: 180}

	assert.Equal(t, 100.0, MatchScore(p, band))
}

func TestMatchScore_WeakProfile(t *testing.T) {
	// 10 + 5 + 2.5 + (1 - 35000/85000)*20 ≈ 29.26
	p := types.NormalizedProfile{
		ExperienceYears:   0,
		EducationCode:     0,
		PerformanceRating: 1,
		CurrentSalary:     50000,
	}
	band := catalog.SalaryRange{Min: 50, Max: 120}

	assert.InDelta(t, 29.26, MatchScore(p, band), 0.01)
}

func TestMatchScore_ExperienceStepFunction(t *testing.T) {
	band := catalog.SalaryRange{Min: 50, Max: 100}
	base := types.NormalizedProfile{CurrentSalary: 75000, EducationCode: 1, PerformanceRating: 5}

	score := func(years int) float64 {
		p := base
		p.ExperienceYears = years
		return MatchScore(p, band)
	}

	// No interpolation inside a tier.
	assert.Equal(t, score(5), score(12))
	assert.Equal(t, score(2), score(4))
	assert.Equal(t, score(0), score(1))
	assert.Equal(t, 10.0, score(5)-score(2))
	assert.Equal(t, 10.0, score(2)-score(0))
}

func TestMatchScore_EducationPoints(t *testing.T) {
	band := catalog.SalaryRange{Min: 50, Max: 100}
	base := types.NormalizedProfile{CurrentSalary: 75000, PerformanceRating: 5}

	score := func(code int) float64 {
		p := base
		p.EducationCode = code
		return MatchScore(p, band)
	}

	assert.Equal(t, 10.0, score(1)-score(0)) // Bachelors over High School
	assert.Equal(t, 25.0, score(3)-score(0)) // PhD over High School
	// Codes outside the mapping score the Bachelors default.
	assert.Equal(t, score(1), score(7))
}

func TestMatchScore_SalaryAlignmentFullPointsAtMidpoint(t *testing.T) {
	band := catalog.SalaryRange{Min: 50, Max: 100} // midpoint 75000
	atMidpoint := types.NormalizedProfile{CurrentSalary: 75000, EducationCode: 1, PerformanceRating: 5}
	farOff := types.NormalizedProfile{CurrentSalary: 500000, EducationCode: 1, PerformanceRating: 5}

	// Alignment contributes exactly 20 at the midpoint and floors at 0 far away.
	assert.Equal(t, 20.0, MatchScore(atMidpoint, band)-MatchScore(farOff, band))
}

func TestMatchScore_AlwaysWithinBounds(t *testing.T) {
	bands := []catalog.SalaryRange{
		{Min: 40, Max: 90},
		{Min: 90, Max: 180},
		catalog.DefaultSalaryRange,
	}
	profiles := []types.NormalizedProfile{
		{},
		{ExperienceYears: 50, EducationCode: 3, PerformanceRating: 10, CurrentSalary: 135000},
		{ExperienceYears: 0, EducationCode: 0, PerformanceRating: 0, CurrentSalary: 1},
		{CurrentSalary: 10000000, PerformanceRating: 10, EducationCode: 3, ExperienceYears: 30},
	}

	for _, band := range bands {
		for _, p := range profiles {
			s := MatchScore(p, band)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestMatchScore_Idempotent(t *testing.T) {
	p := types.NormalizedProfile{
		ExperienceYears:   3,
		EducationCode:     2,
		PerformanceRating: 7.5,
		CurrentSalary:     88000,
	}
	band := catalog.SalaryRange{Min: 60, Max: 130}

	assert.Equal(t, MatchScore(p, band), MatchScore(p, band))
}
