package db

import (
	"context"
	"fmt"
)

// schema is the full DDL for the service. Statements are idempotent so the
// migrate command can be re-run safely.
const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS employees (
    id                   BIGSERIAL PRIMARY KEY,
    name                 VARCHAR(100) NOT NULL,
    email                VARCHAR(100) NOT NULL UNIQUE,
    age                  INTEGER,
    joining_year         INTEGER,
    payment_tier         INTEGER,
    experience_in_domain INTEGER,
    current_salary       DOUBLE PRECISION,
    expected_salary      DOUBLE PRECISION,
    education_level      VARCHAR(50),
    current_role         VARCHAR(100),
    department           VARCHAR(100),
    location             VARCHAR(100),
    performance_rating   DOUBLE PRECISION,
    will_leave           BOOLEAN NOT NULL DEFAULT FALSE,
    created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_employees_current_role ON employees (current_role);

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name          VARCHAR(100) NOT NULL,
    email         VARCHAR(100) NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS job_recommendations (
    id                    BIGSERIAL PRIMARY KEY,
    employee_id           BIGINT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
    job_title             VARCHAR(100) NOT NULL,
    match_score           DOUBLE PRECISION NOT NULL,
    salary_estimate       DOUBLE PRECISION NOT NULL,
    missing_skills        JSONB,
    recommendation_reason TEXT,
    is_active             BOOLEAN NOT NULL DEFAULT TRUE,
    created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_job_recommendations_employee ON job_recommendations (employee_id);
`

// Migrate applies the schema to the connected database.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
