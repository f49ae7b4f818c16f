package wagerateerrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrWageRateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Wage rate not found",
		http.StatusNotFound,
	)
	ErrNoRateForEmployee = apperror.New(
		apperror.CodeNotFound,
		"No wage rate configured for this employee's role",
		http.StatusNotFound,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Role does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
