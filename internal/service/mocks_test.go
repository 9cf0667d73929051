package service

import (
	"context"
	"time"

	"job_board/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) Create(ctx context.Context, a *model.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*model.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) FindByMobile(ctx context.Context, mobile string) (*model.Account, error) {
	args := m.Called(ctx, mobile)
	a, _ := args.Get(0).(*model.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) FindByEmailOrMobile(ctx context.Context, v string) (*model.Account, error) {
	args := m.Called(ctx, v)
	a, _ := args.Get(0).(*model.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) FindByRecoveryEmail(ctx context.Context, email string) ([]model.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).([]model.Account)
	return a, args.Error(1)
}

func (m *mockAccountRepo) Update(ctx context.Context, a *model.Account) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) UpdatePassword(ctx context.Context, id, hash string) (bool, error) {
	args := m.Called(ctx, id, hash)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockAccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCompanyRepo struct{ mock.Mock }

func (m *mockCompanyRepo) Create(ctx context.Context, c *model.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCompanyRepo) FindByID(ctx context.Context, id string) (*model.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Company)
	return c, args.Error(1)
}

func (m *mockCompanyRepo) SearchByName(ctx context.Context, name string) ([]model.Company, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).([]model.Company)
	return c, args.Error(1)
}

func (m *mockCompanyRepo) Update(ctx context.Context, c *model.Company) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockJobRepo struct{ mock.Mock }

func (m *mockJobRepo) Create(ctx context.Context, j *model.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *mockJobRepo) FindByID(ctx context.Context, id string) (*model.Job, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*model.Job)
	return j, args.Error(1)
}

func (m *mockJobRepo) FindAll(ctx context.Context) ([]model.JobListing, error) {
	args := m.Called(ctx)
	j, _ := args.Get(0).([]model.JobListing)
	return j, args.Error(1)
}

func (m *mockJobRepo) FindByAddedBy(ctx context.Context, hrID string) ([]model.JobListing, error) {
	args := m.Called(ctx, hrID)
	j, _ := args.Get(0).([]model.JobListing)
	return j, args.Error(1)
}

func (m *mockJobRepo) Filter(ctx context.Context, f model.JobFilter) ([]model.JobListing, error) {
	args := m.Called(ctx, f)
	j, _ := args.Get(0).([]model.JobListing)
	return j, args.Error(1)
}

func (m *mockJobRepo) Update(ctx context.Context, j *model.Job) (bool, error) {
	args := m.Called(ctx, j)
	return args.Bool(0), args.Error(1)
}

func (m *mockJobRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (*model.ApplicationDetails, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationRepo) FindByJob(ctx context.Context, jobID string) ([]model.ApplicationDetails, error) {
	args := m.Called(ctx, jobID)
	a, _ := args.Get(0).([]model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationRepo) FindByUser(ctx context.Context, userID string) ([]model.ApplicationDetails, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).([]model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationRepo) FindByJobOwner(ctx context.Context, hrID string, from, to *time.Time) ([]model.ApplicationDetails, error) {
	args := m.Called(ctx, hrID, from, to)
	a, _ := args.Get(0).([]model.ApplicationDetails)
	return a, args.Error(1)
}

func (m *mockApplicationRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
