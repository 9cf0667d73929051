package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"job_board/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN           string
	MaxRetries    int
	RetryInterval time.Duration
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn, MaxRetries: 5, RetryInterval: 5 * time.Second}, nil
}

// ConnectDB opens the shared pool, retrying while the database comes up.
func ConnectDB(ctx context.Context, cfg DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	var err error
	for i := 0; i < cfg.MaxRetries; i++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.New(ctx, cfg.DSN)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				logger.Info("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		logger.Warn("failed to connect to database, retrying",
			slog.Int("attempt", i+1),
			slog.Int("maxRetries", cfg.MaxRetries),
			slog.Duration("retryIn", cfg.RetryInterval),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", cfg.MaxRetries, err)
}

// schema creates every table with its constraints if missing. Foreign keys
// cascade so that deleting an account removes everything it owns.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	username TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	recovery_email TEXT,
	dob DATE NOT NULL,
	mobile_number TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('User', 'Company_HR')) DEFAULT 'User',
	status TEXT NOT NULL CHECK (status IN ('online', 'offline')) DEFAULT 'offline',
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT accounts_email_key UNIQUE (email),
	CONSTRAINT accounts_username_key UNIQUE (username),
	CONSTRAINT accounts_mobile_number_key UNIQUE (mobile_number)
);

CREATE TABLE IF NOT EXISTS companies (
	id TEXT PRIMARY KEY,
	company_name TEXT NOT NULL,
	description TEXT NOT NULL,
	industry TEXT NOT NULL,
	address TEXT NOT NULL,
	number_of_employees TEXT NOT NULL CHECK (number_of_employees IN ('1-10', '11-50', '51-200', '201-500', '501+')),
	company_email TEXT NOT NULL,
	company_hr TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT companies_company_name_key UNIQUE (company_name),
	CONSTRAINT companies_company_email_key UNIQUE (company_email)
);

CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	job_title TEXT NOT NULL,
	job_location TEXT NOT NULL CHECK (job_location IN ('onsite', 'remotely', 'hybrid')),
	working_time TEXT NOT NULL CHECK (working_time IN ('part-time', 'full-time')),
	seniority_level TEXT NOT NULL CHECK (seniority_level IN ('Junior', 'Mid-Level', 'Senior', 'Team-Lead', 'CTO')),
	job_description TEXT NOT NULL,
	technical_skills TEXT[] NOT NULL DEFAULT '{}',
	soft_skills TEXT[] NOT NULL DEFAULT '{}',
	added_by TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS applications (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	user_tech_skills TEXT[] NOT NULL DEFAULT '{}',
	user_soft_skills TEXT[] NOT NULL DEFAULT '{}',
	applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT applications_job_id_user_id_key UNIQUE (job_id, user_id)
);

-- Indexes for performance
CREATE INDEX IF NOT EXISTS idx_accounts_recovery_email ON accounts(recovery_email);
CREATE INDEX IF NOT EXISTS idx_companies_company_hr ON companies(company_hr);
CREATE INDEX IF NOT EXISTS idx_jobs_added_by ON jobs(added_by);
CREATE INDEX IF NOT EXISTS idx_jobs_technical_skills ON jobs USING GIN (technical_skills);
CREATE INDEX IF NOT EXISTS idx_applications_user_id ON applications(user_id);
CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications(applied_at);
`

// AutoMigrate creates tables if they don't exist
func AutoMigrate(ctx context.Context, db repository.DB, logger *slog.Logger) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	logger.Info("AutoMigrate applied successfully")
	return nil
}
