package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizledger/backend/internal/application/partner"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
)

// CustomerHandler exposes the customer endpoints.
type CustomerHandler struct {
	*BaseHandler
	service *partner.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service *partner.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// RegisterRoutes registers customer routes on the given group.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.GetByID)
		customers.GET("/code/:code", h.GetByCode)
		customers.PUT("/:id", h.Update)
		customers.PUT("/:id/code", h.UpdateCode)
		customers.POST("/:id/credit-rating", h.ChangeCreditRating)
		customers.POST("/:id/activate", h.Activate)
		customers.POST("/:id/deactivate", h.Deactivate)
		customers.POST("/:id/suspend", h.Suspend)
		customers.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var req partner.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	if userID := h.getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /customers.
func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var filter partner.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	customers, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, customers, dto.NewMeta(total, filter.Page, filter.PageSize))
}

// GetByID handles GET /customers/:id.
func (h *CustomerHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByCode handles GET /customers/code/:code.
func (h *CustomerHandler) GetByCode(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Customer code is required")
		return
	}

	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partner.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateCode handles PUT /customers/:id/code.
func (h *CustomerHandler) UpdateCode(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partner.UpdateCustomerCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.UpdateCode(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeCreditRating handles POST /customers/:id/credit-rating.
func (h *CustomerHandler) ChangeCreditRating(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partner.ChangeCreditRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.ChangeCreditRating(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Activate handles POST /customers/:id/activate.
func (h *CustomerHandler) Activate(c *gin.Context) {
	h.changeStatus(c, h.service.Activate)
}

// Deactivate handles POST /customers/:id/deactivate.
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	h.changeStatus(c, h.service.Deactivate)
}

// Suspend handles POST /customers/:id/suspend.
func (h *CustomerHandler) Suspend(c *gin.Context) {
	h.changeStatus(c, h.service.Suspend)
}

func (h *CustomerHandler) changeStatus(c *gin.Context, change func(context.Context, uuid.UUID, uuid.UUID) error) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := change(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
