package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// pathID parses the {id} path segment as an employee key.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// handleCreateEmployee creates a new employee record
func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req types.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.database.CreateEmployee(r.Context(), &req)
	if err != nil {
		s.logger.Error().Err(err).Msg("create employee failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Employee created successfully",
	})
}

// handleListEmployees returns a page of employees
func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(r, "skip", 0)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skip parameter")
		return
	}
	limit, ok := queryInt(r, "limit", 100)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	employees, err := s.database.ListEmployees(r.Context(), skip, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("list employees failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list employees")
		return
	}

	s.jsonResponse(w, http.StatusOK, employees)
}

// handleGetEmployee returns a single employee by ID
func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := s.database.GetEmployee(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("get employee failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, employee)
}

// handleUpdateEmployee replaces an employee record
func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var req types.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := s.database.UpdateEmployee(r.Context(), id, &req)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("update employee failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update employee")
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":      id,
		"message": "Employee updated successfully",
	})
}

// handleDeleteEmployee removes an employee record
func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	found, err := s.database.DeleteEmployee(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("delete employee failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Employee deleted successfully",
	})
}

// handleListEmployeeRecommendations returns the active recommendation batch
// persisted for an employee.
func (s *Server) handleListEmployeeRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := s.database.GetEmployee(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("get employee failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	recs, err := s.database.ListRecommendations(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Int64("employee_id", id).Msg("list recommendations failed")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list recommendations")
		return
	}

	s.jsonResponse(w, http.StatusOK, recs)
}
