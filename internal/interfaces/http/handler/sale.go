package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizledger/backend/internal/application/trade"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
)

// SaleHandler exposes the sale endpoints.
type SaleHandler struct {
	*BaseHandler
	service *trade.SaleService
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(service *trade.SaleService) *SaleHandler {
	return &SaleHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// RegisterRoutes registers sale routes on the given group.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/:id", h.GetByID)
		sales.GET("/transaction/:transactionId", h.GetByTransactionID)
		sales.PUT("/:id", h.Update)
		sales.POST("/:id/complete", h.Complete)
		sales.POST("/:id/cancel", h.Cancel)
		sales.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /sales. Creating a credit or mixed-payment sale
// consumes the customer's available credit.
func (h *SaleHandler) Create(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var req trade.CreateSaleRequest
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

// List handles GET /sales.
func (h *SaleHandler) List(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var filter trade.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	sales, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, sales, dto.NewMeta(total, filter.Page, filter.PageSize))
}

// GetByID handles GET /sales/:id.
func (h *SaleHandler) GetByID(c *gin.Context) {
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

// GetByTransactionID handles GET /sales/transaction/:transactionId.
func (h *SaleHandler) GetByTransactionID(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		h.BadRequest(c, "Transaction ID is required")
		return
	}

	resp, err := h.service.GetByTransactionID(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /sales/:id.
func (h *SaleHandler) Update(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trade.UpdateSaleRequest
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

// Complete handles POST /sales/:id/complete.
func (h *SaleHandler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

// Cancel handles POST /sales/:id/cancel.
func (h *SaleHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *SaleHandler) transition(c *gin.Context, op func(context.Context, uuid.UUID, uuid.UUID) (*trade.SaleResponse, error)) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := op(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /sales/:id. Deleting a sale restores any credit it
// consumed.
func (h *SaleHandler) Delete(c *gin.Context) {
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
