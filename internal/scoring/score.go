// Package scoring implements the job-matching and salary-estimation engine.
// It is the single source of truth for match scores, salary estimates, and
// ranked recommendations; the API handlers are thin consumers.
package scoring

import (
	"math"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// Maximum contributions per scoring term. These are fixed constants of the
// heuristic, not tunable weights.
const (
	seniorExperiencePoints = 30
	midExperiencePoints    = 20
	juniorExperiencePoints = 10

	maxPerformancePoints     = 25
	maxSalaryAlignmentPoints = 20

	defaultEducationPoints = 15
)

var educationPoints = map[int]float64{
	0: 5,  // High School
	1: 15, // Bachelors
	2: 25, // Masters
	3: 30, // PhD
}

// MatchScore computes the 0-100 compatibility score between a normalized
// profile and a role's salary band. Four additive terms, evaluated in fixed
// order: experience, education, performance, salary alignment.
func MatchScore(p types.NormalizedProfile, band catalog.SalaryRange) float64 {
	score := experienceTerm(p.ExperienceYears)
	score += educationTerm(p.EducationCode)
	score += p.PerformanceRating / 10 * maxPerformancePoints
	score += salaryAlignmentTerm(p.CurrentSalary, band)

	return clamp(score, 0, 100)
}

// experienceTerm is a step function with no interpolation between tiers.
func experienceTerm(years int) float64 {
	switch {
	case years >= 5:
		return seniorExperiencePoints
	case years >= 2:
		return midExperiencePoints
	default:
		return juniorExperiencePoints
	}
}

func educationTerm(code int) float64 {
	if pts, ok := educationPoints[code]; ok {
		return pts
	}
	return defaultEducationPoints
}

// salaryAlignmentTerm awards full points when the current salary sits exactly
// at the band midpoint and degrades linearly with relative distance, flooring
// at zero. Far-off salaries are never penalized below zero.
func salaryAlignmentTerm(currentSalary float64, band catalog.SalaryRange) float64 {
	midpoint := band.Midpoint()
	alignment := 1 - math.Abs(currentSalary-midpoint)/midpoint
	return math.Max(0, alignment*maxSalaryAlignmentPoints)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
