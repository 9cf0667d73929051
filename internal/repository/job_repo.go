package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job_board/internal/model"

	"github.com/jackc/pgx/v5"
)

// JobRepository defines operations for job data
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	FindAll(ctx context.Context) ([]model.JobListing, error)
	FindByAddedBy(ctx context.Context, hrID string) ([]model.JobListing, error)
	Filter(ctx context.Context, filter model.JobFilter) ([]model.JobListing, error)
	Update(ctx context.Context, job *model.Job) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type jobRepository struct {
	db DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, job_title, job_location, working_time, seniority_level, job_description,
       technical_skills, soft_skills, added_by, created_at`

// A listing carries the name of the oldest company managed by the job's HR.
const jobListingSelect = `SELECT j.id, j.job_title, j.job_location, j.working_time, j.seniority_level,
       j.job_description, j.technical_skills, j.soft_skills, j.added_by, j.created_at,
       COALESCE((SELECT c.company_name FROM companies c WHERE c.company_hr = j.added_by
                 ORDER BY c.created_at LIMIT 1), '')
  FROM jobs j`

func scanJob(row pgx.Row, j *model.Job) error {
	return row.Scan(&j.ID, &j.JobTitle, &j.JobLocation, &j.WorkingTime, &j.SeniorityLevel,
		&j.JobDescription, &j.TechnicalSkills, &j.SoftSkills, &j.AddedBy, &j.CreatedAt)
}

// Create inserts a new job
func (r *jobRepository) Create(ctx context.Context, j *model.Job) error {
	sql := `INSERT INTO jobs (id, job_title, job_location, working_time, seniority_level,
                job_description, technical_skills, soft_skills, added_by, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, sql, j.ID, j.JobTitle, j.JobLocation, j.WorkingTime, j.SeniorityLevel,
		j.JobDescription, j.TechnicalSkills, j.SoftSkills, j.AddedBy, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", writeError(err))
	}
	return nil
}

// FindByID retrieves a job by its ID
func (r *jobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	j := &model.Job{}
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	if err := scanJob(r.db.QueryRow(ctx, sql, id), j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return j, nil
}

// FindAll lists every job, newest first
func (r *jobRepository) FindAll(ctx context.Context) ([]model.JobListing, error) {
	return r.listings(ctx, jobListingSelect+` ORDER BY j.created_at DESC`)
}

// FindByAddedBy lists the jobs added by one HR account
func (r *jobRepository) FindByAddedBy(ctx context.Context, hrID string) ([]model.JobListing, error) {
	return r.listings(ctx, jobListingSelect+` WHERE j.added_by = $1 ORDER BY j.created_at DESC`, hrID)
}

// Filter lists the jobs matching every non-zero field of filter. Titles match
// by substring; technical skills match when the job shares at least one.
func (r *jobRepository) Filter(ctx context.Context, filter model.JobFilter) ([]model.JobListing, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(jobListingSelect)
	queryBuilder.WriteString(" WHERE TRUE")
	args := []interface{}{}
	argCount := 1

	if filter.WorkingTime != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND j.working_time = $%d", argCount))
		args = append(args, filter.WorkingTime)
		argCount++
	}
	if filter.JobLocation != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND j.job_location = $%d", argCount))
		args = append(args, filter.JobLocation)
		argCount++
	}
	if filter.SeniorityLevel != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND j.seniority_level = $%d", argCount))
		args = append(args, filter.SeniorityLevel)
		argCount++
	}
	if filter.JobTitle != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND j.job_title ILIKE $%d", argCount))
		args = append(args, containsPattern(filter.JobTitle))
		argCount++
	}
	if len(filter.TechnicalSkills) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND j.technical_skills && $%d", argCount))
		args = append(args, filter.TechnicalSkills)
	}

	queryBuilder.WriteString(" ORDER BY j.created_at DESC")
	return r.listings(ctx, queryBuilder.String(), args...)
}

func (r *jobRepository) listings(ctx context.Context, sql string, args ...interface{}) ([]model.JobListing, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []model.JobListing{}
	for rows.Next() {
		var l model.JobListing
		if err := rows.Scan(
			&l.ID, &l.JobTitle, &l.JobLocation, &l.WorkingTime, &l.SeniorityLevel, &l.JobDescription,
			&l.TechnicalSkills, &l.SoftSkills, &l.AddedBy, &l.CreatedAt, &l.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}

// Update writes the mutable fields of a job and reports whether a row matched
func (r *jobRepository) Update(ctx context.Context, j *model.Job) (bool, error) {
	sql := `UPDATE jobs
            SET job_title = $1, job_location = $2, working_time = $3, seniority_level = $4,
                job_description = $5, technical_skills = $6, soft_skills = $7
            WHERE id = $8`
	cmdTag, err := r.db.Exec(ctx, sql, j.JobTitle, j.JobLocation, j.WorkingTime, j.SeniorityLevel,
		j.JobDescription, j.TechnicalSkills, j.SoftSkills, j.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update job: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a job and its applications, reporting whether a row was deleted
func (r *jobRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
