package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/features"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/predict"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// decodeProfile reads, validates, and normalizes the profile payload shared
// by the prediction and recommendation endpoints. It writes the error
// response itself and reports success through the boolean.
func (s *Server) decodeProfile(w http.ResponseWriter, r *http.Request) (types.NormalizedProfile, bool) {
	var profile types.EmployeeProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return types.NormalizedProfile{}, false
	}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return types.NormalizedProfile{}, false
	}

	normalized, err := features.Normalize(profile, s.clock())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return types.NormalizedProfile{}, false
	}
	return normalized, true
}

// predictErrorResponse maps prediction failures onto HTTP statuses:
// unavailability of the model service is 503, anything else is 500.
func (s *Server) predictErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, predict.ErrUnavailable) {
		s.errorResponse(w, http.StatusServiceUnavailable, "Prediction service unavailable")
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Prediction error: %v", err))
}

// handlePredictRetention classifies attrition risk for a profile
func (s *Server) handlePredictRetention(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	result, err := s.predictor.PredictRetention(r.Context(), profile)
	if err != nil {
		s.predictErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"will_leave":        result.WillLeave,
		"leave_probability": predict.Round3(result.LeaveProbability),
		"stay_probability":  predict.Round3(result.StayProbability),
		"risk_level":        predict.RiskLevel(result.LeaveProbability),
	})
}

// handlePredictSalary returns the regression model's salary with its growth
// relative to the current salary
func (s *Server) handlePredictSalary(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	predicted, err := s.predictor.PredictSalary(r.Context(), profile)
	if err != nil {
		s.predictErrorResponse(w, err)
		return
	}

	growth := predicted - profile.CurrentSalary
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"predicted_salary":  predict.Round2(predicted),
		"current_salary":    profile.CurrentSalary,
		"growth_amount":     predict.Round2(growth),
		"growth_percentage": predict.Round2(growth / profile.CurrentSalary * 100),
	})
}

// handlePredictRole returns the best-fit role with its catalog salary band
func (s *Server) handlePredictRole(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	result, err := s.predictor.PredictRole(r.Context(), profile)
	if err != nil {
		s.predictErrorResponse(w, err)
		return
	}

	band := s.catalog.SalaryRange(result.Role)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommended_role": result.Role,
		"confidence":       predict.Round3(result.Confidence),
		"salary_range": map[string]float64{
			"min": band.Min * 1000,
			"max": band.Max * 1000,
		},
		"confidence_level": predict.ConfidenceLevel(result.Confidence),
	})
}

// handlePredictSkillRating returns the 1-10 overall skill rating with its label
func (s *Server) handlePredictSkillRating(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	rating, err := s.predictor.PredictSkillRating(r.Context(), profile)
	if err != nil {
		s.predictErrorResponse(w, err)
		return
	}

	category := predict.SkillCategory(rating)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"overall_skill_rating": rating,
		"skill_category":       category,
		"rating_scale":         "1-10 scale",
		"description": fmt.Sprintf("Employee shows %s level skills based on experience and performance",
			strings.ToLower(category)),
	})
}
