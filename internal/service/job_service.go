package service

import (
	"context"
	"time"

	"job_board/internal/model"
	"job_board/internal/repository"

	"github.com/google/uuid"
)

// JobService defines operations for jobs
type JobService interface {
	Create(ctx context.Context, hrID string, req model.CreateJobRequest) (*model.Job, error)
	Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.JobListing, error)
	Filter(ctx context.Context, filter model.JobFilter) ([]model.JobListing, error)
	OwnerOf(ctx context.Context, id string) (string, error)
}

type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// Create adds a job posted by hrID
func (s *jobService) Create(ctx context.Context, hrID string, req model.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		ID:              uuid.NewString(),
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		AddedBy:         hrID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) find(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Update applies the non-empty fields of req. A skills list, when present,
// replaces the stored one.
func (s *jobService) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.JobTitle != "" {
		job.JobTitle = req.JobTitle
	}
	if req.JobLocation != "" {
		job.JobLocation = req.JobLocation
	}
	if req.WorkingTime != "" {
		job.WorkingTime = req.WorkingTime
	}
	if req.SeniorityLevel != "" {
		job.SeniorityLevel = req.SeniorityLevel
	}
	if req.JobDescription != "" {
		job.JobDescription = req.JobDescription
	}
	if req.TechnicalSkills != nil {
		job.TechnicalSkills = req.TechnicalSkills
	}
	if req.SoftSkills != nil {
		job.SoftSkills = req.SoftSkills
	}

	updated, err := s.jobRepo.Update(ctx, job)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Delete removes the job and the applications to it
func (s *jobService) Delete(ctx context.Context, id string) error {
	deleted, err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

func (s *jobService) ListAll(ctx context.Context) ([]model.JobListing, error) {
	return s.jobRepo.FindAll(ctx)
}

func (s *jobService) Filter(ctx context.Context, filter model.JobFilter) ([]model.JobListing, error) {
	return s.jobRepo.Filter(ctx, filter)
}

// OwnerOf returns the HR account that added the job
func (s *jobService) OwnerOf(ctx context.Context, id string) (string, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return job.AddedBy, nil
}
