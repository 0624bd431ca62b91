package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizledger/backend/internal/application/finance"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
)

// ChequeHandler exposes the cheque endpoints.
type ChequeHandler struct {
	*BaseHandler
	service *finance.ChequeService
}

// NewChequeHandler creates a new cheque handler.
func NewChequeHandler(service *finance.ChequeService) *ChequeHandler {
	return &ChequeHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// RegisterRoutes registers cheque routes on the given group.
func (h *ChequeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cheques := rg.Group("/cheques")
	{
		cheques.POST("", h.Create)
		cheques.GET("", h.List)
		cheques.GET("/:id", h.GetByID)
		cheques.GET("/number/:number", h.GetByNumber)
		cheques.POST("/:id/transition", h.Transition)
		cheques.PUT("/:id/bank-charges", h.SetBankCharges)
		cheques.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /cheques.
func (h *ChequeHandler) Create(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var req finance.CreateChequeRequest
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

// List handles GET /cheques.
func (h *ChequeHandler) List(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var filter finance.ChequeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	cheques, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, cheques, dto.NewMeta(total, filter.Page, filter.PageSize))
}

// GetByID handles GET /cheques/:id.
func (h *ChequeHandler) GetByID(c *gin.Context) {
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

// GetByNumber handles GET /cheques/number/:number.
func (h *ChequeHandler) GetByNumber(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Cheque number is required")
		return
	}

	resp, err := h.service.GetByNumber(c.Request.Context(), tenantID, number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Transition handles POST /cheques/:id/transition. It moves the cheque
// through its lifecycle and appends an entry to the status history.
func (h *ChequeHandler) Transition(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req finance.TransitionChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.Transition(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetBankCharges handles PUT /cheques/:id/bank-charges.
func (h *ChequeHandler) SetBankCharges(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req finance.SetBankChargesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.service.SetBankCharges(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /cheques/:id.
func (h *ChequeHandler) Delete(c *gin.Context) {
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
