package errors

import (
	"net/http"

	"descu/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"No se encontró la publicación",
		"",
	)

	ErrListingAlreadyExists = NewBaseError(
		http.StatusConflict,
		"LISTING_ALREADY_EXISTS",
		"La publicación ya existe",
		"",
	)

	ErrListingOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"LISTING_OWNERSHIP_VIOLATION",
		"No tienes permiso para modificar esta publicación",
		"",
	)

	ErrListingCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"LISTING_CREATION_FAILED",
		"No se pudo crear la publicación",
		"",
	)

	// Catalog-related errors
	ErrCatalogSeedFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_SEED_FAILED",
		"No se pudo generar el catálogo",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Categoría no válida",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordenada fuera de rango",
		"",
	)

	// Suggestion-related errors
	ErrSuggestionFailed = NewBaseError(
		http.StatusBadGateway,
		"SUGGESTION_FAILED",
		"No se pudo analizar la imagen",
		"",
	)

	ErrSuggestionDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"SUGGESTION_DISABLED",
		"El servicio de sugerencias no está disponible",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Imagen no válida",
		"",
	)

	// Session-related errors
	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_TOKEN_INVALID",
		"Token de sesión no válido o expirado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// PublishError represents an event publishing error, implementing the AppError interface
type PublishError struct {
	err     error
	details string
}

// NewPublishError creates an event-publishing error
func NewPublishError(err error, details string) AppError {
	return &PublishError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PublishError) Error() string {
	return errors.Wrap(e.err, "event publish failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *PublishError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PublishError) ErrorCode() string {
	return "EVENT_PUBLISH_FAILED"
}

// Message returns the user-friendly error message
func (e *PublishError) Message() string {
	return "No se pudo publicar el evento"
}

// Details returns detailed error information
func (e *PublishError) Details() string {
	return e.details
}
