package budgeterrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrBudgetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Budget not found",
		http.StatusNotFound,
	)

	ErrPeriodEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"Budget period end must not be before its start",
		http.StatusBadRequest,
	)

	ErrSiteNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced site does not exist",
		http.StatusBadRequest,
	)
)
