// Package features maps raw employee profiles into the canonical numeric
// feature set shared by the scoring engine and the prediction service.
package features

import (
	"fmt"
	"time"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// DefaultEducationCode is assigned to unrecognized education levels.
// The fallback is silent: a typo in the education string degrades to a
// Bachelors-equivalent profile rather than an error.
const DefaultEducationCode = 1

var educationCodes = map[string]int{
	"High School": 0,
	"Bachelors":   1,
	"Masters":     2,
	"PhD":         3,
}

// InvalidProfileError reports a profile that cannot be normalized.
type InvalidProfileError struct {
	Field   string
	Message string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s - %s", e.Field, e.Message)
}

// EducationCode returns the ordinal code for an education level string.
func EducationCode(level string) int {
	if code, ok := educationCodes[level]; ok {
		return code
	}
	return DefaultEducationCode
}

// Normalize derives the canonical feature set from a raw profile. Tenure is
// computed against the supplied as-of time rather than a fixed reference year.
// A non-positive current salary is rejected: the salary growth rate would be
// undefined otherwise.
func Normalize(p types.EmployeeProfile, asOf time.Time) (types.NormalizedProfile, error) {
	if p.CurrentSalary <= 0 {
		return types.NormalizedProfile{}, &InvalidProfileError{
			Field:   "current_salary",
			Message: "must be greater than zero",
		}
	}

	annualGrowth := p.ExpectedSalary - p.CurrentSalary

	return types.NormalizedProfile{
		Age:               p.Age,
		JoiningYear:       p.JoiningYear,
		PaymentTier:       p.PaymentTier,
		ExperienceYears:   p.ExperienceYears,
		CurrentSalary:     p.CurrentSalary,
		ExpectedSalary:    p.ExpectedSalary,
		EducationCode:     EducationCode(p.EducationLevel),
		PerformanceRating: p.PerformanceRating,
		AnnualGrowth:      annualGrowth,
		SalaryGrowthRate:  annualGrowth / p.CurrentSalary,
		Tenure:            asOf.Year() - p.JoiningYear,
	}, nil
}
