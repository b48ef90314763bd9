package server

import (
	"net/http"
	"strconv"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/catalog"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/scoring"
	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// handleListJobRoles returns the role catalog with salary bands in currency
// units and derived categories
func (s *Server) handleListJobRoles(w http.ResponseWriter, _ *http.Request) {
	roles := make([]types.RoleInfo, 0, s.catalog.Size())
	for _, title := range s.catalog.Roles() {
		band := s.catalog.SalaryRange(title)
		roles = append(roles, types.RoleInfo{
			Title:     title,
			MinSalary: band.Min * 1000,
			MaxSalary: band.Max * 1000,
			Category:  catalog.Category(title),
		})
	}
	s.jsonResponse(w, http.StatusOK, roles)
}

// handleListSkills returns the flattened skill taxonomy
func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	skills := []types.SkillInfo{}
	for _, category := range s.catalog.SkillCategories() {
		for _, name := range category.Skills {
			skills = append(skills, types.SkillInfo{Name: name, Category: category.Name})
		}
	}
	s.jsonResponse(w, http.StatusOK, skills)
}

// handleRecommendJobs scores the profile against every catalog role and
// returns the top N matches. When employee_id is given the batch is also
// persisted for that employee.
func (s *Server) handleRecommendJobs(w http.ResponseWriter, r *http.Request) {
	topN := scoring.DefaultTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid top_n parameter")
			return
		}
		topN = n
	}

	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}

	results := s.engine.Recommend(profile, topN)

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || employeeID < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid employee_id parameter")
			return
		}
		if !s.persistRecommendations(w, r, employeeID, results) {
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, results)
}

func (s *Server) persistRecommendations(w http.ResponseWriter, r *http.Request, employeeID int64, results []types.MatchResult) bool {
	employee, err := s.database.GetEmployee(r.Context(), employeeID)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", employeeID).Msg("get employee failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return false
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return false
	}

	if err := s.database.SaveRecommendations(r.Context(), employeeID, results); err != nil {
		s.logger.Error().Err(err).Int64("employee_id", employeeID).Msg("save recommendations failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save recommendations")
		return false
	}
	return true
}
