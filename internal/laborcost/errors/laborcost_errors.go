package laborcosterrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrLaborRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Labor record not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeConflict,
		"Status transition not allowed",
		http.StatusConflict,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
	ErrNothingToGenerate = apperror.New(
		apperror.CodeInvalidInput,
		"No worked days with cost in the requested period",
		http.StatusUnprocessableEntity,
	)
)
