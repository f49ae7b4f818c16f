package siteerrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrSiteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Site not found",
		http.StatusNotFound,
	)

	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)

	ErrSiteNotActive = apperror.New(
		apperror.CodeConflict,
		"Site is not active",
		http.StatusConflict,
	)
)
