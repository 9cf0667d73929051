package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"job_board/internal/model"
	"job_board/internal/repository"

	"github.com/google/uuid"
)

// CompanyService defines operations for companies
type CompanyService interface {
	Create(ctx context.Context, hrID string, req model.CreateCompanyRequest) (*model.Company, error)
	Get(ctx context.Context, id string) (*model.CompanyDetails, error)
	Update(ctx context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, id string) error
	SearchByName(ctx context.Context, name string) ([]model.Company, error)
	Jobs(ctx context.Context, id string) ([]model.JobListing, error)
	Applications(ctx context.Context, id string) ([]model.ApplicationDetails, error)
	ExportApplicationsCSV(ctx context.Context, id string, day time.Time) (*bytes.Buffer, error)
	OwnerOf(ctx context.Context, id string) (string, error)
}

type companyService struct {
	companyRepo     repository.CompanyRepository
	accountRepo     repository.AccountRepository
	jobRepo         repository.JobRepository
	applicationRepo repository.ApplicationRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyRepo repository.CompanyRepository,
	accountRepo repository.AccountRepository,
	jobRepo repository.JobRepository,
	applicationRepo repository.ApplicationRepository,
) CompanyService {
	return &companyService{
		companyRepo:     companyRepo,
		accountRepo:     accountRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// Create adds a company managed by hrID
func (s *companyService) Create(ctx context.Context, hrID string, req model.CreateCompanyRequest) (*model.Company, error) {
	company := &model.Company{
		ID:                uuid.NewString(),
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      req.CompanyEmail,
		CompanyHR:         hrID,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) find(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// Get returns the company with the public profile of its HR
func (s *companyService) Get(ctx context.Context, id string) (*model.CompanyDetails, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &model.CompanyDetails{Company: *company}
	hr, err := s.accountRepo.FindByID(ctx, company.CompanyHR)
	if err != nil {
		return nil, err
	}
	if hr != nil {
		profile := hr.Profile()
		details.HR = &profile
	}
	return details, nil
}

// Update applies the non-empty fields of req
func (s *companyService) Update(ctx context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Industry != "" {
		company.Industry = req.Industry
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.NumberOfEmployees != "" {
		company.NumberOfEmployees = req.NumberOfEmployees
	}

	updated, err := s.companyRepo.Update(ctx, company)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	deleted, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCompanyNotFound
	}
	return nil
}

func (s *companyService) SearchByName(ctx context.Context, name string) ([]model.Company, error) {
	return s.companyRepo.SearchByName(ctx, strings.TrimSpace(name))
}

// Jobs lists the jobs added by the company's HR
func (s *companyService) Jobs(ctx context.Context, id string) ([]model.JobListing, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.jobRepo.FindByAddedBy(ctx, company.CompanyHR)
}

// Applications lists the applications to every job added by the company's HR
func (s *companyService) Applications(ctx context.Context, id string) ([]model.ApplicationDetails, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.FindByJobOwner(ctx, company.CompanyHR, nil, nil)
}

// ExportApplicationsCSV renders the company's applications submitted on the
// UTC calendar day containing day.
func (s *companyService) ExportApplicationsCSV(ctx context.Context, id string, day time.Time) (*bytes.Buffer, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	applications, err := s.applicationRepo.FindByJobOwner(ctx, company.CompanyHR, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications for CSV export: %w", err)
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	// Write header
	header := []string{"ApplicationID", "JobID", "JobTitle", "ApplicantID", "FirstName", "LastName", "Email", "TechnicalSkills", "SoftSkills", "AppliedAt"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write rows
	for _, a := range applications {
		row := []string{
			a.ID,
			a.JobID,
			a.JobTitle,
			a.UserID,
			a.ApplicantFirstName,
			a.ApplicantLastName,
			a.ApplicantEmail,
			strings.Join(a.UserTechSkills, ";"),
			strings.Join(a.UserSoftSkills, ";"),
			a.AppliedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return buffer, nil
}

// OwnerOf returns the HR account managing the company
func (s *companyService) OwnerOf(ctx context.Context, id string) (string, error) {
	company, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return company.CompanyHR, nil
}
