package dto

import "net/http"

// Error codes returned by the API. Handlers translate domain errors into
// these codes; clients should branch on the code, not the message.
const (
	// Validation / input errors (400)
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeMissingParameter = "MISSING_PARAMETER"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"

	// Authentication / authorization errors (401/403)
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeTokenExpired   = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid   = "INVALID_TOKEN"
	ErrCodeTokenRevoked   = "TOKEN_REVOKED"
	ErrCodeTenantRequired = "TENANT_REQUIRED"

	// Resource errors (404/409)
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeConcurrencyConflict = "CONCURRENCY_CONFLICT"

	// Business rule violations (422)
	ErrCodeBusinessRule        = "BUSINESS_RULE_VIOLATION"
	ErrCodeCreditLimitExceeded = "CREDIT_LIMIT_EXCEEDED"
	ErrCodeInvalidTransition   = "INVALID_TRANSITION"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeHasDependencies     = "HAS_DEPENDENCIES"

	// Request limits (413/429)
	ErrCodeRequestTooLarge   = "REQUEST_TOO_LARGE"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

	// Server errors (500)
	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeDatabaseError = "DATABASE_ERROR"
)

// ErrorCodeHTTPStatus maps API error codes to HTTP status codes.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeInvalidID:        http.StatusBadRequest,
	ErrCodeMissingParameter: http.StatusBadRequest,
	ErrCodeInvalidParameter: http.StatusBadRequest,

	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeTokenExpired:   http.StatusUnauthorized,
	ErrCodeTokenInvalid:   http.StatusUnauthorized,
	ErrCodeTokenRevoked:   http.StatusUnauthorized,
	ErrCodeTenantRequired: http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeBusinessRule:        http.StatusUnprocessableEntity,
	ErrCodeCreditLimitExceeded: http.StatusUnprocessableEntity,
	ErrCodeInvalidTransition:   http.StatusUnprocessableEntity,
	ErrCodeInvalidStatus:       http.StatusUnprocessableEntity,
	ErrCodeHasDependencies:     http.StatusUnprocessableEntity,

	ErrCodeRequestTooLarge:   http.StatusRequestEntityTooLarge,
	ErrCodeRateLimitExceeded: http.StatusTooManyRequests,

	ErrCodeInternalError: http.StatusInternalServerError,
	ErrCodeDatabaseError: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Unknown codes
// map to 422: every domain error that reaches a handler is a rejected
// operation, not a server fault.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}

// domainErrorCodeMapping translates domain-layer error codes into API codes.
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"CONCURRENCY_CONFLICT":  ErrCodeConcurrencyConflict,
	"CREDIT_LIMIT_EXCEEDED": ErrCodeCreditLimitExceeded,
	"INVALID_TRANSITION":    ErrCodeInvalidTransition,
	"INVALID_STATUS":        ErrCodeInvalidStatus,
	"HAS_DEPENDENCIES":      ErrCodeHasDependencies,
}

// NormalizeErrorCode converts a domain error code into its API error code.
// Codes without an explicit mapping pass through unchanged and resolve via
// GetHTTPStatus.
func NormalizeErrorCode(code string) string {
	if normalized, ok := domainErrorCodeMapping[code]; ok {
		return normalized
	}
	return code
}
