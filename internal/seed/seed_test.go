package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
)

func TestGenerate_Deterministic(t *testing.T) {
	c := catalog.Default()
	opts := Options{Count: 50, Seed: 42, AsOf: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	a := Generate(c, opts)
	b := Generate(c, opts)
	assert.Equal(t, a, b)

	// A different seed produces a different population.
	other := Generate(c, Options{Count: 50, Seed: 43, AsOf: opts.AsOf})
	assert.NotEqual(t, a, other)
}

func TestGenerate_Bounds(t *testing.T) {
	c := catalog.Default()
	roles := map[string]bool{}
	for _, r := range c.Roles() {
		roles[r] = true
	}

	employees := Generate(c, Options{Count: 500, Seed: 7, AsOf: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.Len(t, employees, 500)

	for _, e := range employees {
		assert.GreaterOrEqual(t, e.Age, 22)
		assert.LessOrEqual(t, e.Age, 60)
		assert.GreaterOrEqual(t, e.JoiningYear, 2015)
		assert.LessOrEqual(t, e.JoiningYear, 2023)
		assert.GreaterOrEqual(t, e.ExperienceYears, 0)
		assert.LessOrEqual(t, e.ExperienceYears, 25)
		assert.GreaterOrEqual(t, e.PerformanceRating, 1.0)
		assert.LessOrEqual(t, e.PerformanceRating, 10.0)
		assert.True(t, roles[e.CurrentRole], e.CurrentRole)
		assert.Greater(t, e.CurrentSalary, 0.0)
		assert.Greater(t, e.ExpectedSalary, e.CurrentSalary)

		switch {
		case e.CurrentSalary < 60000:
			assert.Equal(t, 1, e.PaymentTier)
		case e.CurrentSalary < 100000:
			assert.Equal(t, 2, e.PaymentTier)
		default:
			assert.Equal(t, 3, e.PaymentTier)
		}

		// Every generated record must pass API validation.
		require.NoError(t, e.Validate())
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	employees := Generate(catalog.Default(), Options{Seed: 1})
	assert.Len(t, employees, DefaultCount)
}

func TestGenerate_EducationDistribution(t *testing.T) {
	employees := Generate(catalog.Default(), Options{Count: 2000, Seed: 11})

	counts := map[string]int{}
	for _, e := range employees {
		counts[e.EducationLevel]++
	}

	// Weights are 10/50/30/10; allow generous slack.
	assert.Greater(t, counts["Bachelors"], counts["Masters"])
	assert.Greater(t, counts["Masters"], counts["PhD"])
	assert.InDelta(t, 0.50, float64(counts["Bachelors"])/2000, 0.08)
	assert.InDelta(t, 0.10, float64(counts["High School"])/2000, 0.05)
}

func TestLeaveProbability(t *testing.T) {
	// Base case inside the clamp.
	assert.InDelta(t, 0.2, leaveProbability(7, 0.10, 5, 2, 30), 1e-9)
	// Everything bad stacks up and clamps at 0.8.
	assert.InDelta(t, 0.8, leaveProbability(5, 0.06, 10, 1, 50), 1e-9)
	// Everything good clamps at the floor.
	assert.InDelta(t, 0.05, leaveProbability(9, 0.14, 3, 3, 30), 1e-9)
}
