package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
)

// Employee is a stored employee record.
type Employee struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Age               int       `json:"age"`
	JoiningYear       int       `json:"joining_year"`
	PaymentTier       int       `json:"payment_tier"`
	ExperienceYears   int       `json:"experience_in_domain"`
	CurrentSalary     float64   `json:"current_salary"`
	ExpectedSalary    float64   `json:"expected_salary"`
	EducationLevel    string    `json:"education_level"`
	CurrentRole       string    `json:"current_role"`
	Department        string    `json:"department"`
	Location          string    `json:"location"`
	PerformanceRating float64   `json:"performance_rating"`
	WillLeave         bool      `json:"will_leave"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

const employeeColumns = `id, name, email, age, joining_year, payment_tier,
	 experience_in_domain, current_salary, expected_salary, education_level,
	 current_role, department, location, performance_rating, will_leave,
	 created_at, updated_at`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Age, &e.JoiningYear, &e.PaymentTier,
		&e.ExperienceYears, &e.CurrentSalary, &e.ExpectedSalary, &e.EducationLevel,
		&e.CurrentRole, &e.Department, &e.Location, &e.PerformanceRating, &e.WillLeave,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEmployee inserts a new employee record and returns its ID
func (db *DB) CreateEmployee(ctx context.Context, req *types.CreateEmployeeRequest) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO employees (name, email, age, joining_year, payment_tier,
		        experience_in_domain, current_salary, expected_salary, education_level,
		        current_role, department, location, performance_rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		req.Name, req.Email, req.Age, req.JoiningYear, req.PaymentTier,
		req.ExperienceYears, req.CurrentSalary, req.ExpectedSalary, req.EducationLevel,
		req.CurrentRole, req.Department, req.Location, req.PerformanceRating,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}
	return id, nil
}

// GetEmployee retrieves an employee by ID; returns (nil, nil) when absent
func (db *DB) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	e, err := scanEmployee(db.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// ListEmployees retrieves a page of employees ordered by ID
func (db *DB) ListEmployees(ctx context.Context, skip, limit int) ([]Employee, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	return employees, nil
}

// UpdateEmployee replaces the mutable fields of an employee record.
// Returns false when the employee does not exist.
func (db *DB) UpdateEmployee(ctx context.Context, id int64, req *types.CreateEmployeeRequest) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE employees SET name = $1, email = $2, age = $3, joining_year = $4,
		        payment_tier = $5, experience_in_domain = $6, current_salary = $7,
		        expected_salary = $8, education_level = $9, current_role = $10,
		        department = $11, location = $12, performance_rating = $13,
		        updated_at = NOW()
		 WHERE id = $14`,
		req.Name, req.Email, req.Age, req.JoiningYear, req.PaymentTier,
		req.ExperienceYears, req.CurrentSalary, req.ExpectedSalary, req.EducationLevel,
		req.CurrentRole, req.Department, req.Location, req.PerformanceRating, id)
	if err != nil {
		return false, fmt.Errorf("failed to update employee: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// MarkAttrition sets the will_leave flag on an employee record
func (db *DB) MarkAttrition(ctx context.Context, id int64, willLeave bool) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE employees SET will_leave = $1, updated_at = NOW() WHERE id = $2`,
		willLeave, id)
	if err != nil {
		return fmt.Errorf("failed to mark attrition: %w", err)
	}
	return nil
}

// DeleteEmployee removes an employee and its recommendations (via cascade).
// Returns false when the employee does not exist.
func (db *DB) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
