package materialerrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrMaterialNotFound = apperror.New(
		apperror.CodeNotFound,
		"Material not found",
		http.StatusNotFound,
	)

	ErrMaterialAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Material with this SKU already exists",
		http.StatusConflict,
	)

	ErrInsufficientStock = apperror.New(
		apperror.CodeConflict,
		"Adjustment would make stock negative",
		http.StatusConflict,
	)

	ErrSiteNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced site does not exist",
		http.StatusBadRequest,
	)
)
