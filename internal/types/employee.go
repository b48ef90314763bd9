// Package types provides the value objects shared across the workforce
// analytics service: employee profiles, normalized feature sets, and
// recommendation results.
package types

import (
	"github.com/go-playground/validator/v10"
)

// EmployeeProfile is the raw profile submitted for prediction and scoring.
// Salaries are in currency units; performance rating is a 1-10 continuous scale.
type EmployeeProfile struct {
	Age               int     `json:"age" validate:"required,gte=16,lte=100"`
	JoiningYear       int     `json:"joining_year" validate:"required,gte=1950"`
	PaymentTier       int     `json:"payment_tier" validate:"gte=0,lte=3"`
	ExperienceYears   int     `json:"experience_in_domain" validate:"gte=0"`
	CurrentSalary     float64 `json:"current_salary" validate:"required,gt=0"`
	ExpectedSalary    float64 `json:"expected_salary" validate:"required,gt=0"`
	EducationLevel    string  `json:"education_level" validate:"required"`
	PerformanceRating float64 `json:"performance_rating" validate:"gte=0,lte=10"`
}

// Validate checks the profile against its field constraints.
func (p *EmployeeProfile) Validate() error {
	return validator.New().Struct(p)
}

// NormalizedProfile is the canonical numeric feature set derived from an
// EmployeeProfile. It is the input contract for both the scoring engine and
// the external prediction service.
type NormalizedProfile struct {
	Age               int     `json:"age"`
	JoiningYear       int     `json:"joining_year"`
	PaymentTier       int     `json:"payment_tier"`
	ExperienceYears   int     `json:"experience_in_domain"`
	CurrentSalary     float64 `json:"current_salary"`
	ExpectedSalary    float64 `json:"expected_salary"`
	EducationCode     int     `json:"education_encoded"`
	PerformanceRating float64 `json:"performance_rating"`
	AnnualGrowth      float64 `json:"annual_growth"`
	SalaryGrowthRate  float64 `json:"salary_growth_rate"`
	Tenure            int     `json:"tenure"`
}

// CreateEmployeeRequest is the payload for registering a new employee record.
type CreateEmployeeRequest struct {
	Name              string  `json:"name" validate:"required,min=1"`
	Email             string  `json:"email" validate:"required,email"`
	Age               int     `json:"age" validate:"required,gte=16,lte=100"`
	JoiningYear       int     `json:"joining_year" validate:"required,gte=1950"`
	PaymentTier       int     `json:"payment_tier" validate:"gte=0,lte=3"`
	ExperienceYears   int     `json:"experience_in_domain" validate:"gte=0"`
	CurrentSalary     float64 `json:"current_salary" validate:"required,gt=0"`
	ExpectedSalary    float64 `json:"expected_salary" validate:"required,gt=0"`
	EducationLevel    string  `json:"education_level" validate:"required"`
	CurrentRole       string  `json:"current_role"`
	Department        string  `json:"department"`
	Location          string  `json:"location"`
	PerformanceRating float64 `json:"performance_rating" validate:"gte=0,lte=10"`
}

// Validate checks the request against its field constraints.
func (r *CreateEmployeeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Profile extracts the prediction-relevant subset of the request.
func (r *CreateEmployeeRequest) Profile() EmployeeProfile {
	return EmployeeProfile{
		Age:               r.Age,
		JoiningYear:       r.JoiningYear,
		PaymentTier:       r.PaymentTier,
		ExperienceYears:   r.ExperienceYears,
		CurrentSalary:     r.CurrentSalary,
		ExpectedSalary:    r.ExpectedSalary,
		EducationLevel:    r.EducationLevel,
		PerformanceRating: r.PerformanceRating,
	}
}
