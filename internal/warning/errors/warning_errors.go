package warningerrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrWarningNotFound = apperror.New(
		apperror.CodeNotFound,
		"Warning not found",
		http.StatusNotFound,
	)

	ErrAlreadyAcknowledged = apperror.New(
		apperror.CodeConflict,
		"Warning is already acknowledged",
		http.StatusConflict,
	)

	ErrNotYourWarning = apperror.New(
		apperror.CodeForbidden,
		"Warning belongs to another employee",
		http.StatusForbidden,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced employee does not exist",
		http.StatusBadRequest,
	)
)
