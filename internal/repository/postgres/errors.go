package postgres

import (
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
	pgNumericOutOfRange   = "22003"
)

// uniqueMessages maps unique constraint names to client-facing messages.
var uniqueMessages = map[string]string{
	"users_email_key":             "Email already exists",
	"users_mobile_number_key":     "Mobile number already exists",
	"users_user_name_key":         "User name already exists",
	"companies_company_email_key": "Company's email already exists",
}

// translate maps driver errors onto domain and application errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			msg, ok := uniqueMessages[pgErr.ConstraintName]
			if !ok {
				msg = "Resource already exists"
			}
			return apperror.Conflict(msg)
		case pgForeignKeyViolation:
			return apperror.Unprocessable("Referenced resource does not exist", err)
		case pgInvalidText:
			return apperror.BadRequest("Malformed value in query")
		case pgNumericOutOfRange:
			return apperror.BadRequest("Value out of range in query")
		}
	}
	return apperror.Internal(err)
}
