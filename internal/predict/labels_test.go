package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "High", RiskLevel(0.71))
	assert.Equal(t, "Medium", RiskLevel(0.7)) // boundary stays Medium
	assert.Equal(t, "Medium", RiskLevel(0.41))
	assert.Equal(t, "Low", RiskLevel(0.4))
	assert.Equal(t, "Low", RiskLevel(0))
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, "High", ConfidenceLevel(0.81))
	assert.Equal(t, "Medium", ConfidenceLevel(0.8))
	assert.Equal(t, "Medium", ConfidenceLevel(0.61))
	assert.Equal(t, "Low", ConfidenceLevel(0.6))
}

func TestSkillCategory(t *testing.T) {
	assert.Equal(t, "Expert", SkillCategory(8))
	assert.Equal(t, "Proficient", SkillCategory(6.5))
	assert.Equal(t, "Intermediate", SkillCategory(4))
	assert.Equal(t, "Beginner", SkillCategory(3.9))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 0.833, Round3(5.0/6.0))
	assert.Equal(t, 0.667, Round3(2.0/3.0))
	assert.Equal(t, 1234.57, Round2(1234.567))
	assert.Equal(t, 12.0, Round2(12.0))
}
