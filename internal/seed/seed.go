// Package seed generates synthetic employee records for local development
// and model training. The generator is deterministic for a given seed.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// DefaultCount is the number of employees generated when none is requested.
const DefaultCount = 1000

var (
	departments = []string{"Engineering", "Data Science", "Product", "Design", "Operations"}
	locations   = []string{"New York", "San Francisco", "Austin", "Seattle", "Remote"}

	educationLevels = []string{"High School", "Bachelors", "Masters", "PhD"}
	// Cumulative percentage weights: 10/50/30/10.
	educationCutoffs = []float64{10, 60, 90, 100}

	educationSalaryMultipliers = map[string]float64{
		"High School": 0.8,
		"Bachelors":   1.0,
		"Masters":     1.2,
		"PhD":         1.4,
	}
)

// Options controls the generated population.
type Options struct {
	Count int
	Seed  int64
	AsOf  time.Time // reference time for experience derivation
}

// Employee is a generated record: the API payload plus the attrition label
// that only the generator knows.
type Employee struct {
	types.CreateEmployeeRequest
	WillLeave bool
}

// Generate produces a deterministic synthetic population against the given
// role catalog.
func Generate(c *catalog.Catalog, opts Options) []Employee {
	if opts.Count <= 0 {
		opts.Count = DefaultCount
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now()
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	roles := c.Roles()
	refYear := opts.AsOf.Year()

	employees := make([]Employee, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		age := clampInt(int(rng.NormFloat64()*8+32), 22, 60)
		joiningYear := 2015 + rng.Intn(9)

		experience := age - 22 - (refYear - joiningYear)
		experience = clampInt(experience, 0, 25)

		role := roles[rng.Intn(len(roles))]
		education := pickEducation(rng)

		band := c.SalaryRange(role)
		multiplier := (1 + float64(experience)*0.05) * educationSalaryMultipliers[education]
		currentSalary := uniform(rng, band.Min*multiplier, band.Max*multiplier) * 1000

		growthRate := uniform(rng, 0.05, 0.15)
		expectedSalary := currentSalary * (1 + growthRate)

		paymentTier := 3
		switch {
		case currentSalary < 60000:
			paymentTier = 1
		case currentSalary < 100000:
			paymentTier = 2
		}

		performance := clampFloat(rng.NormFloat64()*1.5+7.5, 1, 10)

		willLeave := rng.Float64() < leaveProbability(performance, growthRate, experience, paymentTier, age)

		employees = append(employees, Employee{
			CreateEmployeeRequest: types.CreateEmployeeRequest{
				Name:              fmt.Sprintf("Employee_%d", i+1),
				Email:             fmt.Sprintf("employee%d@company.com", i+1),
				Age:               age,
				JoiningYear:       joiningYear,
				PaymentTier:       paymentTier,
				ExperienceYears:   experience,
				CurrentSalary:     round2(currentSalary),
				ExpectedSalary:    round2(expectedSalary),
				EducationLevel:    education,
				CurrentRole:       role,
				Department:        departments[rng.Intn(len(departments))],
				Location:          locations[rng.Intn(len(locations))],
				PerformanceRating: round2(performance),
			},
			WillLeave: willLeave,
		})
	}
	return employees
}

// leaveProbability is the attrition heuristic used to label the synthetic
// population: low performers, stagnant salaries, underpaid veterans, and
// older employees are more likely to leave; strong performers, fast salary
// growth, and top payment tiers retain. Clamped to [0.05, 0.8].
func leaveProbability(performance, growthRate float64, experience, paymentTier, age int) float64 {
	p := 0.2

	if performance < 6 {
		p += 0.3
	}
	if growthRate < 0.08 {
		p += 0.2
	}
	if experience > 8 && paymentTier == 1 {
		p += 0.25
	}
	if age > 45 {
		p += 0.15
	}

	if performance > 8 {
		p -= 0.2
	}
	if growthRate > 0.12 {
		p -= 0.15
	}
	if paymentTier == 3 {
		p -= 0.1
	}

	return clampFloat(p, 0.05, 0.8)
}

func pickEducation(rng *rand.Rand) string {
	r := rng.Float64() * 100
	for i, cutoff := range educationCutoffs {
		if r < cutoff {
			return educationLevels[i]
		}
	}
	return educationLevels[len(educationLevels)-1]
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
