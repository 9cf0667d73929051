package service

import (
	"context"
	"encoding/csv"
	"testing"
	"time"

	"job_board/internal/apperr"
	"job_board/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type companyFixture struct {
	companies    *mockCompanyRepo
	accounts     *mockAccountRepo
	jobs         *mockJobRepo
	applications *mockApplicationRepo
	svc          CompanyService
}

func newCompanyFixture() *companyFixture {
	f := &companyFixture{
		companies:    new(mockCompanyRepo),
		accounts:     new(mockAccountRepo),
		jobs:         new(mockJobRepo),
		applications: new(mockApplicationRepo),
	}
	f.svc = NewCompanyService(f.companies, f.accounts, f.jobs, f.applications)
	return f
}

func storedCompany() *model.Company {
	return &model.Company{ID: "co-1", CompanyName: "Acme", Description: "Widgets", Industry: "Manufacturing", NumberOfEmployees: "11-50", CompanyHR: "hr-1"}
}

func TestCompanyService_Create_OwnerIsCaller(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("Create", ctx, mock.MatchedBy(func(c *model.Company) bool {
		return c.CompanyHR == "hr-1" && c.ID != "" && c.CompanyName == "Acme"
	})).Return(nil)

	company, err := f.svc.Create(ctx, "hr-1", model.CreateCompanyRequest{CompanyName: "Acme", CompanyEmail: "hr@acme.test", NumberOfEmployees: "1-10"})
	require.NoError(t, err)
	assert.Equal(t, "hr-1", company.CompanyHR)
}

func TestCompanyService_Get_IncludesHRProfile(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("FindByID", ctx, "co-1").Return(storedCompany(), nil)
	f.accounts.On("FindByID", ctx, "hr-1").Return(&model.Account{ID: "hr-1", Username: "hrlead", PasswordHash: "hash", Role: model.RoleCompanyHR}, nil)

	details, err := f.svc.Get(ctx, "co-1")
	require.NoError(t, err)
	require.NotNil(t, details.HR)
	assert.Equal(t, "hrlead", details.HR.Username)
	assert.Equal(t, "Acme", details.CompanyName)
}

func TestCompanyService_Get_NotFound(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("FindByID", ctx, "co-x").Return(nil, nil)

	_, err := f.svc.Get(ctx, "co-x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCompanyService_Update_KeepsEmptyFields(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("FindByID", ctx, "co-1").Return(storedCompany(), nil)
	f.companies.On("Update", ctx, mock.MatchedBy(func(c *model.Company) bool {
		return c.Description == "Gadgets" && c.Industry == "Manufacturing" && c.NumberOfEmployees == "11-50"
	})).Return(true, nil)

	_, err := f.svc.Update(ctx, "co-1", model.UpdateCompanyRequest{Description: "Gadgets"})
	require.NoError(t, err)
	f.companies.AssertExpectations(t)
}

func TestCompanyService_Update_DeletedMeanwhileIsNotFound(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("FindByID", ctx, "co-1").Return(storedCompany(), nil)
	f.companies.On("Update", ctx, mock.Anything).Return(false, nil)

	_, err := f.svc.Update(ctx, "co-1", model.UpdateCompanyRequest{Description: "Gadgets"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCompanyService_ExportApplicationsCSV(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 15, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	applied := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	f.companies.On("FindByID", ctx, "co-1").Return(storedCompany(), nil)
	f.applications.On("FindByJobOwner", ctx, "hr-1",
		mock.MatchedBy(func(from *time.Time) bool { return from.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) }),
		mock.MatchedBy(func(to *time.Time) bool { return to.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)) }),
	).Return([]model.ApplicationDetails{{
		Application: model.Application{
			ID: "app-1", JobID: "job-1", UserID: "acc-1",
			UserTechSkills: []string{"Go", "SQL"}, UserSoftSkills: []string{"Teamwork"},
			AppliedAt: applied,
		},
		ApplicantFirstName: "Mona",
		ApplicantLastName:  "Adel",
		ApplicantEmail:     "mona@example.com",
		JobTitle:           "Backend, Senior",
	}}, nil)

	buf, err := f.svc.ExportApplicationsCSV(ctx, "co-1", day)
	require.NoError(t, err)

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ApplicationID", records[0][0])
	assert.Equal(t, []string{
		"app-1", "job-1", "Backend, Senior", "acc-1", "Mona", "Adel", "mona@example.com",
		"Go;SQL", "Teamwork", "2026-03-02T09:00:00Z",
	}, records[1])
}

func TestCompanyService_ApplicationsAndJobsUseCompanyHR(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("FindByID", ctx, "co-1").Return(storedCompany(), nil)
	f.applications.On("FindByJobOwner", ctx, "hr-1", (*time.Time)(nil), (*time.Time)(nil)).Return([]model.ApplicationDetails{}, nil)
	f.jobs.On("FindByAddedBy", ctx, "hr-1").Return([]model.JobListing{{Job: model.Job{ID: "job-1"}, CompanyName: "Acme"}}, nil)

	apps, err := f.svc.Applications(ctx, "co-1")
	require.NoError(t, err)
	assert.Empty(t, apps)

	jobs, err := f.svc.Jobs(ctx, "co-1")
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestCompanyService_DeleteAndOwnerOf(t *testing.T) {
	f := newCompanyFixture()
	ctx := context.Background()

	f.companies.On("Delete", ctx, "co-1").Return(false, nil)
	assert.ErrorIs(t, f.svc.Delete(ctx, "co-1"), apperr.ErrNotFound)

	f.companies.On("FindByID", ctx, "co-1").Return(storedCompany(), nil)
	owner, err := f.svc.OwnerOf(ctx, "co-1")
	require.NoError(t, err)
	assert.Equal(t, "hr-1", owner)
}
