package repository

import (
	"context"
	"errors"
	"strings"

	"job_board/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx used by repositories. *pgxpool.Pool satisfies it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// uniqueFields maps unique constraint names to the payload field they guard.
var uniqueFields = map[string]string{
	"accounts_email_key":              "email",
	"accounts_username_key":           "username",
	"accounts_mobile_number_key":      "mobileNumber",
	"companies_company_name_key":      "companyName",
	"companies_company_email_key":     "companyEmail",
	"applications_job_id_user_id_key": "jobId",
}

// referenceMessages maps foreign keys to the NotFound message reported when
// the referenced row is gone, e.g. a token outliving its deleted account.
var referenceMessages = map[string]string{
	"companies_company_hr_fkey": "account not found",
	"jobs_added_by_fkey":        "account not found",
	"applications_user_id_fkey": "account not found",
	"applications_job_id_fkey":  "job not found",
}

// writeError converts unique violations into Conflict and violations of the
// owner foreign keys into NotFound. Other errors are returned unchanged.
func writeError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		field, ok := uniqueFields[pgErr.ConstraintName]
		if !ok {
			field = strings.TrimSuffix(pgErr.ConstraintName, "_key")
		}
		return apperr.Wrap(apperr.KindConflict, field+" already in use", err)
	case foreignKeyViolation:
		if msg, ok := referenceMessages[pgErr.ConstraintName]; ok {
			return apperr.Wrap(apperr.KindNotFound, msg, err)
		}
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
