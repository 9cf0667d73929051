package repository

import (
	"context"
	"errors"
	"fmt"

	"job_board/internal/model"

	"github.com/jackc/pgx/v5"
)

// CompanyRepository defines operations for company data
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id string) (*model.Company, error)
	SearchByName(ctx context.Context, name string) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type companyRepository struct {
	db DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `id, company_name, description, industry, address, number_of_employees,
       company_email, company_hr, created_at`

func scanCompany(row pgx.Row, c *model.Company) error {
	return row.Scan(&c.ID, &c.CompanyName, &c.Description, &c.Industry, &c.Address,
		&c.NumberOfEmployees, &c.CompanyEmail, &c.CompanyHR, &c.CreatedAt)
}

// Create inserts a new company
func (r *companyRepository) Create(ctx context.Context, c *model.Company) error {
	sql := `INSERT INTO companies (id, company_name, description, industry, address,
                number_of_employees, company_email, company_hr, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, sql, c.ID, c.CompanyName, c.Description, c.Industry, c.Address,
		c.NumberOfEmployees, c.CompanyEmail, c.CompanyHR, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", writeError(err))
	}
	return nil
}

// FindByID retrieves a company by its ID
func (r *companyRepository) FindByID(ctx context.Context, id string) (*model.Company, error) {
	c := &model.Company{}
	sql := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	if err := scanCompany(r.db.QueryRow(ctx, sql, id), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find company by ID: %w", err)
	}
	return c, nil
}

// SearchByName returns companies whose name contains name, case-insensitively.
// Wildcards in name match literally.
func (r *companyRepository) SearchByName(ctx context.Context, name string) ([]model.Company, error) {
	sql := `SELECT ` + companyColumns + ` FROM companies
            WHERE company_name ILIKE $1 ORDER BY company_name`
	rows, err := r.db.Query(ctx, sql, containsPattern(name))
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		var c model.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}

// Update writes the mutable fields of a company and reports whether a row matched
func (r *companyRepository) Update(ctx context.Context, c *model.Company) (bool, error) {
	sql := `UPDATE companies
            SET description = $1, industry = $2, address = $3, number_of_employees = $4
            WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, c.Description, c.Industry, c.Address, c.NumberOfEmployees, c.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update company: %w", writeError(err))
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a company and reports whether a row was deleted
func (r *companyRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete company: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
