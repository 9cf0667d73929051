package service

import (
	"context"
	"time"

	"job_board/internal/apperr"
	"job_board/internal/model"
	"job_board/internal/repository"

	"github.com/google/uuid"
)

// ApplicationService defines operations for job applications
type ApplicationService interface {
	Apply(ctx context.Context, userID string, req model.CreateApplicationRequest) (*model.Application, error)
	ListForJob(ctx context.Context, jobID string) ([]model.ApplicationDetails, error)
	ListForUser(ctx context.Context, userID string) ([]model.ApplicationDetails, error)
	Get(ctx context.Context, viewerID, id string) (*model.ApplicationDetails, error)
	Delete(ctx context.Context, actorID, id string) error
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationRepo repository.ApplicationRepository, jobRepo repository.JobRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo, jobRepo: jobRepo}
}

// Apply submits an application by userID. The job must exist, and a second
// application to the same job is a Conflict.
func (s *applicationService) Apply(ctx context.Context, userID string, req model.CreateApplicationRequest) (*model.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	application := &model.Application{
		ID:             uuid.NewString(),
		JobID:          job.ID,
		UserID:         userID,
		UserTechSkills: req.UserTechSkills,
		UserSoftSkills: req.UserSoftSkills,
		AppliedAt:      time.Now().UTC(),
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, apperr.Wrap(apperr.KindConflict, "you have already applied to this job", err)
		}
		return nil, err
	}
	return application, nil
}

func (s *applicationService) ListForJob(ctx context.Context, jobID string) ([]model.ApplicationDetails, error) {
	return s.applicationRepo.FindByJob(ctx, jobID)
}

func (s *applicationService) ListForUser(ctx context.Context, userID string) ([]model.ApplicationDetails, error) {
	return s.applicationRepo.FindByUser(ctx, userID)
}

// Get returns the application if viewerID is its applicant or the owner of its job
func (s *applicationService) Get(ctx context.Context, viewerID, id string) (*model.ApplicationDetails, error) {
	return s.authorized(ctx, viewerID, id)
}

// Delete withdraws or discards an application. Only the applicant and the
// owner of the job may delete it.
func (s *applicationService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.authorized(ctx, actorID, id); err != nil {
		return err
	}
	deleted, err := s.applicationRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrApplicationNotFound
	}
	return nil
}

func (s *applicationService) authorized(ctx context.Context, accountID, id string) (*model.ApplicationDetails, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	if accountID != application.UserID && accountID != application.JobAddedBy {
		return nil, apperr.Forbidden("you do not have access to this application")
	}
	return application, nil
}
