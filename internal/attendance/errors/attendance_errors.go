package attendanceerrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"An open attendance interval already exists, clock out first",
		http.StatusConflict,
	)
	ErrNoOpenInterval = apperror.New(
		apperror.CodeNotFound,
		"No open attendance interval to clock out of",
		http.StatusNotFound,
	)
	ErrOutsideGeofence = apperror.New(
		apperror.CodeInvalidInput,
		"Location is outside the site geofence",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
