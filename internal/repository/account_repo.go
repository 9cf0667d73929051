package repository

import (
	"context"
	"errors"
	"fmt"

	"job_board/internal/model"

	"github.com/jackc/pgx/v5"
)

// AccountRepository defines operations for account data
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id string) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByMobile(ctx context.Context, mobile string) (*model.Account, error)
	FindByEmailOrMobile(ctx context.Context, emailOrMobile string) (*model.Account, error)
	FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]model.Account, error)
	Update(ctx context.Context, account *model.Account) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) (bool, error)
}

type accountRepository struct {
	db DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db DB) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, first_name, last_name, username, email, password_hash,
       COALESCE(recovery_email, ''), dob, mobile_number, role, status, created_at`

func scanAccount(row pgx.Row, a *model.Account) error {
	return row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Username, &a.Email, &a.PasswordHash,
		&a.RecoveryEmail, &a.DOB, &a.MobileNumber, &a.Role, &a.Status, &a.CreatedAt)
}

// Create inserts a new account. Unique email, username or mobile collisions are Conflict errors.
func (r *accountRepository) Create(ctx context.Context, a *model.Account) error {
	sql := `INSERT INTO accounts (id, first_name, last_name, username, email, password_hash,
                recovery_email, dob, mobile_number, role, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, sql, a.ID, a.FirstName, a.LastName, a.Username, a.Email, a.PasswordHash,
		a.RecoveryEmail, a.DOB, a.MobileNumber, a.Role, a.Status, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", writeError(err))
	}
	return nil
}

// findOne returns nil, nil when no row matches; the service layer decides what that means.
func (r *accountRepository) findOne(ctx context.Context, where string, arg any) (*model.Account, error) {
	a := &model.Account{}
	sql := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	err := scanAccount(r.db.QueryRow(ctx, sql, arg), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// FindByID retrieves an account by its ID
func (r *accountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	a, err := r.findOne(ctx, `id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find account by ID: %w", err)
	}
	return a, nil
}

// FindByEmail retrieves an account by its email
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	a, err := r.findOne(ctx, `email = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	return a, nil
}

// FindByMobile retrieves an account by its mobile number
func (r *accountRepository) FindByMobile(ctx context.Context, mobile string) (*model.Account, error) {
	a, err := r.findOne(ctx, `mobile_number = $1`, mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to find account by mobile number: %w", err)
	}
	return a, nil
}

// FindByEmailOrMobile retrieves the account whose email or mobile number equals the value
func (r *accountRepository) FindByEmailOrMobile(ctx context.Context, emailOrMobile string) (*model.Account, error) {
	a, err := r.findOne(ctx, `email = $1 OR mobile_number = $1`, emailOrMobile)
	if err != nil {
		return nil, fmt.Errorf("failed to find account by email or mobile number: %w", err)
	}
	return a, nil
}

// FindByRecoveryEmail lists every account registered with the recovery email
func (r *accountRepository) FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]model.Account, error) {
	sql := `SELECT ` + accountColumns + ` FROM accounts WHERE recovery_email = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql, recoveryEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by recovery email: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := scanAccount(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// Update writes the profile fields of an existing account and reports whether a row matched
func (r *accountRepository) Update(ctx context.Context, a *model.Account) (bool, error) {
	sql := `UPDATE accounts
            SET first_name = $1, last_name = $2, email = $3, mobile_number = $4,
                recovery_email = NULLIF($5, ''), dob = $6
            WHERE id = $7`
	cmdTag, err := r.db.Exec(ctx, sql, a.FirstName, a.LastName, a.Email, a.MobileNumber, a.RecoveryEmail, a.DOB, a.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update account: %w", writeError(err))
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpdatePassword replaces the stored password hash and reports whether a row matched
func (r *accountRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (bool, error) {
	sql := `UPDATE accounts SET password_hash = $1 WHERE id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, passwordHash, id)
	if err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpdateStatus sets the presence status of an account
func (r *accountRepository) UpdateStatus(ctx context.Context, id, status string) error {
	sql := `UPDATE accounts SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, sql, status, id); err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	return nil
}

// Delete removes an account. Companies, jobs and applications referencing it
// are removed by ON DELETE CASCADE. It reports whether a row was deleted.
func (r *accountRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete account: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
