package autherrors

import (
	"net/http"

	"github.com/archit-sahay/Aibo-Meikan/internal/shared/apperror"
)

var (
	ErrInvalidPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid password",
		http.StatusUnauthorized,
	)
	ErrNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"Server configuration error",
		http.StatusServiceUnavailable,
	)
)
