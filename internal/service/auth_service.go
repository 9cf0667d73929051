package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"job_board/internal/apperr"
	"job_board/internal/model"
	"job_board/internal/repository"
	"job_board/internal/utils"
	"job_board/internal/validation"

	"github.com/google/uuid"
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, req model.SignUpRequest) (*model.Account, string, error)
	Login(ctx context.Context, req model.SignInRequest) (*model.Account, string, error)
	Logout(ctx context.Context, accountID string) error
}

type authService struct {
	accountRepo repository.AccountRepository
	hasher      *utils.PasswordHasher
	jwtUtil     *utils.JWTUtil
	logger      *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo repository.AccountRepository, hasher *utils.PasswordHasher, jwtUtil *utils.JWTUtil, logger *slog.Logger) AuthService {
	return &authService{
		accountRepo: accountRepo,
		hasher:      hasher,
		jwtUtil:     jwtUtil,
		logger:      logger,
	}
}

// Register creates a new account and returns it with a session token. A taken
// email or mobile number is a Conflict and nothing is written.
func (s *authService) Register(ctx context.Context, req model.SignUpRequest) (*model.Account, string, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	existing, err = s.accountRepo.FindByMobile(ctx, req.MobileNumber)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing mobile number: %w", err)
	}
	if existing != nil {
		return nil, "", ErrMobileTaken
	}

	dob, err := validation.ParseISODate(req.DOB)
	if err != nil {
		return nil, "", apperr.Validation([]apperr.FieldViolation{{Field: "DOB", Message: "DOB must be a valid date (YYYY-MM-DD)"}})
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}

	username := req.Username
	if username == "" {
		username = req.FirstName + req.LastName
	}

	account := &model.Account{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      username,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		RecoveryEmail: req.RecoveryEmail,
		DOB:           dob,
		MobileNumber:  req.MobileNumber,
		Role:          req.Role,
		Status:        model.StatusOffline,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.jwtUtil.GenerateToken(account.ID, account.Role)
	if err != nil {
		s.logger.ErrorContext(ctx, "account created, but token generation failed", "account_id", account.ID, "error", err)
		return account, "", fmt.Errorf("account created, but failed to generate token: %w", err)
	}

	return account, token, nil
}

// Login authenticates by email or mobile number, marks the account online and
// returns a session token.
func (s *authService) Login(ctx context.Context, req model.SignInRequest) (*model.Account, string, error) {
	account, err := s.accountRepo.FindByEmailOrMobile(ctx, req.EmailOrMobile)
	if err != nil {
		return nil, "", fmt.Errorf("error finding account: %w", err)
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, account.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.accountRepo.UpdateStatus(ctx, account.ID, model.StatusOnline); err != nil {
		return nil, "", err
	}
	account.Status = model.StatusOnline

	return account, token, nil
}

// Logout marks the account offline. The token itself stays valid until it expires.
func (s *authService) Logout(ctx context.Context, accountID string) error {
	return s.accountRepo.UpdateStatus(ctx, accountID, model.StatusOffline)
}
