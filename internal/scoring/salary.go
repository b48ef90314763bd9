package scoring

import (
	"math"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

const experienceRaisePerYear = 0.03

// Education multipliers applied to the band midpoint. Unknown codes get the
// neutral Bachelors multiplier.
var educationMultipliers = map[int]float64{
	0: 0.85,
	1: 1.0,
	2: 1.15,
	3: 1.3,
}

// EstimateSalary computes the role-specific salary estimate for a profile,
// independent of the trained regression model. The experience multiplier is
// intentionally uncapped: extreme inputs (say 100 years of experience)
// extrapolate linearly to a 4x base.
func EstimateSalary(p types.NormalizedProfile, band catalog.SalaryRange) float64 {
	base := band.Midpoint()

	expMultiplier := 1 + float64(p.ExperienceYears)*experienceRaisePerYear

	eduMultiplier, ok := educationMultipliers[p.EducationCode]
	if !ok {
		eduMultiplier = 1.0
	}

	// Performance scales the result within [0.8, 1.2] for ratings in [0, 10].
	perfMultiplier := 0.8 + p.PerformanceRating/10*0.4

	return round2(base * expMultiplier * eduMultiplier * perfMultiplier)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
