package service

import (
	"context"
	"errors"
	"fmt"

	"job_board/internal/apperr"
	"job_board/internal/model"
	"job_board/internal/repository"
	"job_board/internal/utils"
	"job_board/internal/validation"
)

// AccountService manages the authenticated account and public profiles
type AccountService interface {
	Get(ctx context.Context, id string) (*model.Account, error)
	GetProfile(ctx context.Context, id string) (*model.PublicProfile, error)
	Update(ctx context.Context, id string, req model.UpdateAccountRequest) (*model.Account, error)
	UpdatePassword(ctx context.Context, id string, req model.UpdatePasswordRequest) error
	Delete(ctx context.Context, id string) error
	ListByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]model.PublicProfile, error)
	OwnerOf(ctx context.Context, id string) (string, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
	hasher      *utils.PasswordHasher
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo repository.AccountRepository, hasher *utils.PasswordHasher) AccountService {
	return &accountService{accountRepo: accountRepo, hasher: hasher}
}

func (s *accountService) Get(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *accountService) GetProfile(ctx context.Context, id string) (*model.PublicProfile, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := account.Profile()
	return &profile, nil
}

// Update applies the non-empty fields of req. A new email or mobile number
// already held by another account is a Conflict.
func (s *accountService) Update(ctx context.Context, id string, req model.UpdateAccountRequest) (*model.Account, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != account.Email {
		other, err := s.accountRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, ErrEmailTaken
		}
		account.Email = req.Email
	}
	if req.MobileNumber != "" && req.MobileNumber != account.MobileNumber {
		other, err := s.accountRepo.FindByMobile(ctx, req.MobileNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing mobile number: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, ErrMobileTaken
		}
		account.MobileNumber = req.MobileNumber
	}

	if req.FirstName != "" {
		account.FirstName = req.FirstName
	}
	if req.LastName != "" {
		account.LastName = req.LastName
	}
	if req.RecoveryEmail != "" {
		account.RecoveryEmail = req.RecoveryEmail
	}
	if req.DOB != "" {
		dob, err := validation.ParseISODate(req.DOB)
		if err != nil {
			return nil, apperr.Validation([]apperr.FieldViolation{{Field: "DOB", Message: "DOB must be a valid date (YYYY-MM-DD)"}})
		}
		account.DOB = dob
	}

	updated, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// UpdatePassword replaces the password once the current one verifies.
func (s *accountService) UpdatePassword(ctx context.Context, id string, req model.UpdatePasswordRequest) error {
	account, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(req.CurrentPassword, account.PasswordHash) {
		return ErrWrongPassword
	}

	hashed, err := s.hasher.Hash(req.NewPassword)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return apperr.Validation([]apperr.FieldViolation{
			{Field: "newPassword", Message: fmt.Sprintf("newPassword must be at most %d bytes long", utils.MaxPasswordBytes)},
		})
	}
	if err != nil {
		return err
	}
	updated, err := s.accountRepo.UpdatePassword(ctx, id, hashed)
	if err != nil {
		return err
	}
	if !updated {
		return ErrAccountNotFound
	}
	return nil
}

// Delete removes the account together with its companies, jobs and applications.
func (s *accountService) Delete(ctx context.Context, id string) error {
	deleted, err := s.accountRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAccountNotFound
	}
	return nil
}

func (s *accountService) ListByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]model.PublicProfile, error) {
	accounts, err := s.accountRepo.FindByRecoveryEmail(ctx, recoveryEmail)
	if err != nil {
		return nil, err
	}
	profiles := make([]model.PublicProfile, 0, len(accounts))
	for i := range accounts {
		profiles = append(profiles, accounts[i].Profile())
	}
	return profiles, nil
}

// OwnerOf reports the owner of an account, which is the account itself.
func (s *accountService) OwnerOf(ctx context.Context, id string) (string, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return account.ID, nil
}
