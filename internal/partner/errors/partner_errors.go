package partnererrors

import (
	"net/http"

	"github.com/archit-sahay/Aibo-Meikan/internal/shared/apperror"
)

var (
	ErrPartnerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Partner not found",
		http.StatusNotFound,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrPhoneNumberRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one phone number is required",
		http.StatusBadRequest,
	)
	ErrInvalidPhoneNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid phone number format",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidPinCode = apperror.New(
		apperror.CodeInvalidInput,
		"Pin code must be exactly 6 digits",
		http.StatusBadRequest,
	)
	ErrInvalidPartnerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid partner ID",
		http.StatusBadRequest,
	)
	ErrUniqueCodeConflict = apperror.New(
		apperror.CodeConflict,
		"Partner code already exists",
		http.StatusConflict,
	)
	ErrCodeGenerationExhausted = apperror.New(
		apperror.CodeExhausted,
		"Failed to generate unique code. Please try again.",
		http.StatusInternalServerError,
	)
)
