package notificationerrors

import (
	"go-siteops/internal/shared/apperror"
	"net/http"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)

	ErrNotYourNotification = apperror.New(
		apperror.CodeForbidden,
		"Notification belongs to another employee",
		http.StatusForbidden,
	)
)
