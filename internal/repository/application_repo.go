package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"job_board/internal/model"

	"github.com/jackc/pgx/v5"
)

// ApplicationRepository defines operations for application data
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id string) (*model.ApplicationDetails, error)
	FindByJob(ctx context.Context, jobID string) ([]model.ApplicationDetails, error)
	FindByUser(ctx context.Context, userID string) ([]model.ApplicationDetails, error)
	FindByJobOwner(ctx context.Context, hrID string, from, to *time.Time) ([]model.ApplicationDetails, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type applicationRepository struct {
	db DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationDetailsSelect = `SELECT a.id, a.job_id, a.user_id, a.user_tech_skills, a.user_soft_skills, a.applied_at,
       u.first_name, u.last_name, u.email, j.job_title, j.job_location, j.added_by
  FROM applications a
  JOIN accounts u ON u.id = a.user_id
  JOIN jobs j ON j.id = a.job_id`

func scanApplicationDetails(row pgx.Row, d *model.ApplicationDetails) error {
	return row.Scan(&d.ID, &d.JobID, &d.UserID, &d.UserTechSkills, &d.UserSoftSkills, &d.AppliedAt,
		&d.ApplicantFirstName, &d.ApplicantLastName, &d.ApplicantEmail, &d.JobTitle, &d.JobLocation, &d.JobAddedBy)
}

// Create inserts a new application. Applying twice to the same job is a Conflict.
func (r *applicationRepository) Create(ctx context.Context, a *model.Application) error {
	sql := `INSERT INTO applications (id, job_id, user_id, user_tech_skills, user_soft_skills, applied_at)
            VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, sql, a.ID, a.JobID, a.UserID, a.UserTechSkills, a.UserSoftSkills, a.AppliedAt)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", writeError(err))
	}
	return nil
}

// FindByID retrieves an application with its applicant and job
func (r *applicationRepository) FindByID(ctx context.Context, id string) (*model.ApplicationDetails, error) {
	d := &model.ApplicationDetails{}
	if err := scanApplicationDetails(r.db.QueryRow(ctx, applicationDetailsSelect+` WHERE a.id = $1`, id), d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find application by ID: %w", err)
	}
	return d, nil
}

// FindByJob lists the applications to one job
func (r *applicationRepository) FindByJob(ctx context.Context, jobID string) ([]model.ApplicationDetails, error) {
	return r.list(ctx, applicationDetailsSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC`, jobID)
}

// FindByUser lists the applications submitted by one account
func (r *applicationRepository) FindByUser(ctx context.Context, userID string) ([]model.ApplicationDetails, error) {
	return r.list(ctx, applicationDetailsSelect+` WHERE a.user_id = $1 ORDER BY a.applied_at DESC`, userID)
}

// FindByJobOwner lists the applications to every job added by hrID. A nil
// bound leaves that side of the applied_at range open; to is exclusive.
func (r *applicationRepository) FindByJobOwner(ctx context.Context, hrID string, from, to *time.Time) ([]model.ApplicationDetails, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(applicationDetailsSelect)
	queryBuilder.WriteString(" WHERE j.added_by = $1")
	args := []interface{}{hrID}
	argCount := 2 // Start after added_by

	if from != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.applied_at >= $%d", argCount))
		args = append(args, *from)
		argCount++
	}
	if to != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.applied_at < $%d", argCount))
		args = append(args, *to)
	}
	queryBuilder.WriteString(" ORDER BY a.applied_at")

	return r.list(ctx, queryBuilder.String(), args...)
}

func (r *applicationRepository) list(ctx context.Context, sql string, args ...interface{}) ([]model.ApplicationDetails, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	applications := []model.ApplicationDetails{}
	for rows.Next() {
		var d model.ApplicationDetails
		if err := scanApplicationDetails(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		applications = append(applications, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return applications, nil
}

// Delete removes an application and reports whether a row was deleted
func (r *applicationRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete application: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
