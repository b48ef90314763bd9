package server

import "net/http"

// handleDashboard returns workforce aggregates plus catalog sizes
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.database.GetDashboardStats(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("dashboard aggregation failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute dashboard data")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"total_employees":        stats.TotalEmployees,
		"role_distribution":      stats.RoleDistribution,
		"average_salary_by_role": stats.AverageSalaryByRole,
		"available_roles":        s.catalog.Size(),
		"skill_categories":       len(s.catalog.SkillCategories()),
	})
}
