package db

import (
	"context"
	"fmt"
)

// DashboardStats aggregates the workforce for the analytics dashboard.
type DashboardStats struct {
	TotalEmployees      int                `json:"total_employees"`
	RoleDistribution    map[string]int     `json:"role_distribution"`
	AverageSalaryByRole map[string]float64 `json:"average_salary_by_role"`
}

// GetDashboardStats computes headcount and per-role aggregates.
// Employees without a role are grouped under "Unknown" in the distribution
// and excluded from salary averages.
func (db *DB) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		RoleDistribution:    map[string]int{},
		AverageSalaryByRole: map[string]float64{},
	}

	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&stats.TotalEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT COALESCE(NULLIF(current_role, ''), 'Unknown'), COUNT(*)
		 FROM employees GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute role distribution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("failed to scan role distribution: %w", err)
		}
		stats.RoleDistribution[role] = count
	}

	salaryRows, err := db.pool.Query(ctx,
		`SELECT current_role, AVG(current_salary)
		 FROM employees
		 WHERE current_role IS NOT NULL AND current_role <> ''
		   AND current_salary IS NOT NULL AND current_salary > 0
		 GROUP BY current_role`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute salary averages: %w", err)
	}
	defer salaryRows.Close()
	for salaryRows.Next() {
		var role string
		var avg float64
		if err := salaryRows.Scan(&role, &avg); err != nil {
			return nil, fmt.Errorf("failed to scan salary average: %w", err)
		}
		stats.AverageSalaryByRole[role] = avg
	}

	return stats, nil
}
