package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// Recommendation is a persisted job recommendation for an employee.
type Recommendation struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	JobTitle       string    `json:"job_title"`
	MatchScore     float64   `json:"match_score"`
	SalaryEstimate float64   `json:"salary_estimate"`
	MissingSkills  []string  `json:"missing_skills"`
	Reason         string    `json:"recommendation_reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaveRecommendations stores a scored recommendation batch for an employee,
// retiring any previous active batch first.
func (db *DB) SaveRecommendations(ctx context.Context, employeeID int64, results []types.MatchResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE job_recommendations SET is_active = FALSE WHERE employee_id = $1 AND is_active`,
		employeeID,
	); err != nil {
		return fmt.Errorf("failed to retire previous recommendations: %w", err)
	}

	for _, r := range results {
		gaps, err := json.Marshal(r.MissingSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal skill gaps: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_recommendations
			        (employee_id, job_title, match_score, salary_estimate, missing_skills, recommendation_reason)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			employeeID, r.JobTitle, r.MatchScore, r.SalaryEstimate, gaps, r.RecommendationReason,
		); err != nil {
			return fmt.Errorf("failed to save recommendation %s: %w", r.JobTitle, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recommendations: %w", err)
	}
	return nil
}

// ListRecommendations retrieves the active recommendation batch for an
// employee, best match first.
func (db *DB) ListRecommendations(ctx context.Context, employeeID int64) ([]Recommendation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, employee_id, job_title, match_score, salary_estimate,
		        missing_skills, COALESCE(recommendation_reason, ''), created_at
		 FROM job_recommendations
		 WHERE employee_id = $1 AND is_active
		 ORDER BY match_score DESC, id`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	recs := []Recommendation{}
	for rows.Next() {
		var r Recommendation
		var gaps []byte
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.JobTitle, &r.MatchScore,
			&r.SalaryEstimate, &gaps, &r.Reason, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if gaps != nil {
			_ = json.Unmarshal(gaps, &r.MissingSkills)
		}
		recs = append(recs, r)
	}
	return recs, nil
}
