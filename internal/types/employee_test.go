package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() EmployeeProfile {
	return EmployeeProfile{
		Age:               30,
		JoiningYear:       2019,
		PaymentTier:       2,
		ExperienceYears:   5,
		CurrentSalary:     85000,
		ExpectedSalary:    92000,
		EducationLevel:    "Masters",
		PerformanceRating: 7.5,
	}
}

func TestEmployeeProfile_Validate_OK(t *testing.T) {
	p := validProfile()
	assert.NoError(t, p.Validate())
}

func TestEmployeeProfile_Validate_ZeroSalaryRejected(t *testing.T) {
	p := validProfile()
	p.CurrentSalary = 0

	assert.Error(t, p.Validate())
}

func TestEmployeeProfile_Validate_RatingOutOfRange(t *testing.T) {
	p := validProfile()
	p.PerformanceRating = 10.5

	assert.Error(t, p.Validate())
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := CreateEmployeeRequest{
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		Age:               30,
		JoiningYear:       2020,
		PaymentTier:       2,
		ExperienceYears:   4,
		CurrentSalary:     90000,
		ExpectedSalary:    99000,
		EducationLevel:    "PhD",
		CurrentRole:       "Software Engineer",
		PerformanceRating: 8,
	}
	require.NoError(t, req.Validate())

	req.Email = "not-an-email"
	assert.Error(t, req.Validate())
}

func TestCreateEmployeeRequest_Profile(t *testing.T) {
	req := CreateEmployeeRequest{
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		Age:               30,
		JoiningYear:       2020,
		ExperienceYears:   4,
		CurrentSalary:     90000,
		ExpectedSalary:    99000,
		EducationLevel:    "PhD",
		PerformanceRating: 8,
	}

	p := req.Profile()
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, "PhD", p.EducationLevel)
	assert.Equal(t, 90000.0, p.CurrentSalary)
}

func TestRegisterRequest_Validate(t *testing.T) {
	req := RegisterRequest{Name: "HR Admin", Email: "admin@example.com", Password: "supersecret"}
	require.NoError(t, req.Validate())

	req.Password = "short"
	assert.Error(t, req.Validate())
}
