package contacterrors

import (
	"net/http"

	"github.com/archit-sahay/Aibo-Meikan/internal/shared/apperror"
)

var (
	ErrAllFieldsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"All fields are required",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrMessageTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Message must be at least 10 characters long",
		http.StatusBadRequest,
	)
	ErrSendFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to send email. Please try again later.",
		http.StatusInternalServerError,
	)
	ErrMailNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Mail service is not configured",
		http.StatusServiceUnavailable,
	)
)
