package handler

import (
	"net/http"

	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	svc service.SaleService
}

func NewSaleHandler(svc service.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Create records a point-of-sale line against an active booking and
// decrements stock atomically for non-rental items.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.AddSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddSale(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Delete reverses a sale and restores stock when the sale consumed any.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.RemoveSale(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SaleHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
