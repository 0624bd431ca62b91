package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
	"github.com/bizledger/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides response helpers shared by all HTTP handlers.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

func (h *BaseHandler) getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(middleware.RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// getTenantID resolves the tenant from the JWT claims set by the auth
// middleware. Every tenant-scoped endpoint requires it; there is no
// fallback tenant.
func (h *BaseHandler) getTenantID(c *gin.Context) (uuid.UUID, bool) {
	tenantID, ok := middleware.GetJWTTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing tenant context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(tenantID)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant context")
		return uuid.Nil, false
	}
	return id, true
}

// getUserID resolves the authenticated user from the JWT claims. Returns
// uuid.Nil when the request is unauthenticated.
func (h *BaseHandler) getUserID(c *gin.Context) uuid.UUID {
	userID, ok := middleware.GetJWTUserID(c)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// parseIDParam binds and parses the :id path parameter.
func (h *BaseHandler) parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.ErrorWithCode(c, http.StatusBadRequest, dto.ErrCodeInvalidID, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Success sends a 200 response with data.
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with data and pagination metadata.
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data interface{}, meta *dto.Meta) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, meta))
}

// Created sends a 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorWithCode sends an error response with an explicit status and code.
func (h *BaseHandler) ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, h.getRequestID(c)))
}

// BadRequest sends a 400 response.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.ErrorWithCode(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, message)
}

// NotFound sends a 404 response.
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.ErrorWithCode(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 response.
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.ErrorWithCode(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// Conflict sends a 409 response.
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	h.ErrorWithCode(c, http.StatusConflict, dto.ErrCodeConflict, message)
}

// InternalError sends a 500 response.
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.ErrorWithCode(c, http.StatusInternalServerError, dto.ErrCodeInternalError, message)
}

// ValidationError sends a 400 response with field-level details when the
// error comes from the binding validator.
func (h *BaseHandler) ValidationError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]dto.ValidationDetail, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, dto.ValidationDetail{
				Field:   strings.ToLower(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Validation failed", details, h.getRequestID(c)))
		return
	}
	h.BadRequest(c, err.Error())
}

// HandleError translates service-layer errors into HTTP responses. Domain
// errors carry their own code; everything else is a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.ErrorWithCode(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}
	h.InternalError(c, "An unexpected error occurred")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gtfield":
		return "must be greater than " + strings.ToLower(fe.Param())
	default:
		return "is invalid"
	}
}
