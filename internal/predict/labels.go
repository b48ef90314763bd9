package predict

import "math"

// RiskLevel buckets a leave probability into the dashboard's risk labels.
func RiskLevel(leaveProbability float64) string {
	switch {
	case leaveProbability > 0.7:
		return "High"
	case leaveProbability > 0.4:
		return "Medium"
	default:
		return "Low"
	}
}

// ConfidenceLevel buckets a classifier confidence score.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence > 0.8:
		return "High"
	case confidence > 0.6:
		return "Medium"
	default:
		return "Low"
	}
}

// SkillCategory labels a 1-10 skill rating.
func SkillCategory(rating float64) string {
	switch {
	case rating >= 8:
		return "Expert"
	case rating >= 6:
		return "Proficient"
	case rating >= 4:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// Round3 rounds probabilities for API responses.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round2 rounds currency amounts for API responses.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
