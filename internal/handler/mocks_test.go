package handler

import (
	"bytes"
	"context"
	"time"

	"job_board/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req model.SignUpRequest) (*model.Account, string, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*model.Account)
	return a, args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, req model.SignInRequest) (*model.Account, string, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*model.Account)
	return a, args.String(1), args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

type mockAccountService struct{ mock.Mock }

func (m *mockAccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Account)
	return a, args.Error(1)
}

func (m *mockAccountService) GetProfile(ctx context.Context, id string) (*model.PublicProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.PublicProfile)
	return p, args.Error(1)
}

func (m *mockAccountService) Update(ctx context.Context, id string, req model.UpdateAccountRequest) (*model.Account, error) {
	args := m.Called(ctx, id, req)
	a, _ := args.Get(0).(*model.Account)
	return a, args.Error(1)
}

func (m *mockAccountService) UpdatePassword(ctx context.Context, id string, req model.UpdatePasswordRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *mockAccountService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAccountService) ListByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]model.PublicProfile, error) {
	args := m.Called(ctx, recoveryEmail)
	p, _ := args.Get(0).([]model.PublicProfile)
	return p, args.Error(1)
}

func (m *mockAccountService) OwnerOf(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockCompanyService struct{ mock.Mock }

func (m *mockCompanyService) Create(ctx context.Context, hrID string, req model.CreateCompanyRequest) (*model.Company, error) {
	args := m.Called(ctx, hrID, req)
	c, _ := args.Get(0).(*model.Company)
	return c, args.Error(1)
}

func (m *mockCompanyService) Get(ctx context.Context, id string) (*model.CompanyDetails, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.CompanyDetails)
	return c, args.Error(1)
}

func (m *mockCompanyService) Update(ctx context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error) {
	args := m.Called(ctx, id, req)
	c, _ := args.Get(0).(*model.Company)
	return c, args.Error(1)
}

func (m *mockCompanyService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCompanyService) SearchByName(ctx context.Context, name string) ([]model.Company, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).([]model.Company)
	return c, args.Error(1)
}

func (m *mockCompanyService) Jobs(ctx context.Context, id string) ([]model.JobListing, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).([]model.JobListing)
	return j, args.Error(1)
}

func (m *mockCompanyService) Applications(ctx context.Context, id string) ([]model.ApplicationDetails, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).([]model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockCompanyService) ExportApplicationsCSV(ctx context.Context, id string, day time.Time) (*bytes.Buffer, error) {
	args := m.Called(ctx, id, day)
	b, _ := args.Get(0).(*bytes.Buffer)
	return b, args.Error(1)
}

func (m *mockCompanyService) OwnerOf(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockJobService struct{ mock.Mock }

func (m *mockJobService) Create(ctx context.Context, hrID string, req model.CreateJobRequest) (*model.Job, error) {
	args := m.Called(ctx, hrID, req)
	j, _ := args.Get(0).(*model.Job)
	return j, args.Error(1)
}

func (m *mockJobService) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	args := m.Called(ctx, id, req)
	j, _ := args.Get(0).(*model.Job)
	return j, args.Error(1)
}

func (m *mockJobService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockJobService) ListAll(ctx context.Context) ([]model.JobListing, error) {
	args := m.Called(ctx)
	j, _ := args.Get(0).([]model.JobListing)
	return j, args.Error(1)
}

func (m *mockJobService) Filter(ctx context.Context, filter model.JobFilter) ([]model.JobListing, error) {
	args := m.Called(ctx, filter)
	j, _ := args.Get(0).([]model.JobListing)
	return j, args.Error(1)
}

func (m *mockJobService) OwnerOf(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockApplicationService struct{ mock.Mock }

func (m *mockApplicationService) Apply(ctx context.Context, userID string, req model.CreateApplicationRequest) (*model.Application, error) {
	args := m.Called(ctx, userID, req)
	a, _ := args.Get(0).(*model.Application)
	return a, args.Error(1)
}

func (m *mockApplicationService) ListForJob(ctx context.Context, jobID string) ([]model.ApplicationDetails, error) {
	args := m.Called(ctx, jobID)
	a, _ := args.Get(0).([]model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationService) ListForUser(ctx context.Context, userID string) ([]model.ApplicationDetails, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).([]model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationService) Get(ctx context.Context, viewerID, id string) (*model.ApplicationDetails, error) {
	args := m.Called(ctx, viewerID, id)
	a, _ := args.Get(0).(*model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationService) Delete(ctx context.Context, actorID, id string) error {
	return m.Called(ctx, actorID, id).Error(0)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
