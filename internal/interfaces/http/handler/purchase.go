package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizledger/backend/internal/application/trade"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
)

// PurchaseHandler exposes the purchase endpoints.
type PurchaseHandler struct {
	*BaseHandler
	service *trade.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(service *trade.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// RegisterRoutes registers purchase routes on the given group.
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("", h.List)
		purchases.GET("/:id", h.GetByID)
		purchases.PUT("/:id", h.Update)
		purchases.POST("/:id/payments", h.RecordPayment)
		purchases.POST("/:id/received", h.MarkReceived)
		purchases.PUT("/:id/delivery", h.UpdateDelivery)
		purchases.POST("/:id/paid", h.MarkPaid)
		purchases.POST("/:id/complete", h.Complete)
		purchases.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /purchases.
func (h *PurchaseHandler) Create(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var req trade.CreatePurchaseRequest
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

// List handles GET /purchases.
func (h *PurchaseHandler) List(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var filter trade.PurchaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	purchases, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, purchases, dto.NewMeta(total, filter.Page, filter.PageSize))
}

// GetByID handles GET /purchases/:id.
func (h *PurchaseHandler) GetByID(c *gin.Context) {
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

// Update handles PUT /purchases/:id.
func (h *PurchaseHandler) Update(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trade.UpdatePurchaseRequest
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

// RecordPayment handles POST /purchases/:id/payments.
func (h *PurchaseHandler) RecordPayment(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trade.RecordPurchasePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.RecordPayment(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkReceived handles POST /purchases/:id/received.
func (h *PurchaseHandler) MarkReceived(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trade.MarkReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.MarkReceived(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateDelivery handles PUT /purchases/:id/delivery.
func (h *PurchaseHandler) UpdateDelivery(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req trade.UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.UpdateDelivery(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPaid handles POST /purchases/:id/paid.
func (h *PurchaseHandler) MarkPaid(c *gin.Context) {
	h.transition(c, h.service.MarkPaid)
}

// Complete handles POST /purchases/:id/complete.
func (h *PurchaseHandler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *PurchaseHandler) transition(c *gin.Context, op func(context.Context, uuid.UUID, uuid.UUID) (*trade.PurchaseResponse, error)) {
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

// Delete handles DELETE /purchases/:id.
func (h *PurchaseHandler) Delete(c *gin.Context) {
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
