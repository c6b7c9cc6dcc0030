package handler

import (
	"net/http"
	"strconv"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/middleware"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type InventoryHandler struct {
	svc service.InventoryService
	rdb *redis.Client
}

func NewInventoryHandler(svc service.InventoryService, rdb *redis.Client) *InventoryHandler {
	return &InventoryHandler{svc: svc, rdb: rdb}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) List(c *gin.Context) {
	var filter dto.ItemFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListItems(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	InvalidatePriceCache(c.Request.Context(), h.rdb, resp.SKU)
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	// Resolve the SKU before deletion so the public price cache can be purged.
	detail, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	InvalidatePriceCache(c.Request.Context(), h.rdb, detail.SKU)
	c.Status(http.StatusNoContent)
}

// AdjustStock applies an IN/OUT/ADJUSTMENT movement and records the acting
// user in the audit trail.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actingID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid token subject"))
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, req, actingID)
	if err != nil {
		respondErr(c, err)
		return
	}
	InvalidatePriceCache(c.Request.Context(), h.rdb, resp.SKU)
	c.JSON(http.StatusOK, resp)
}

// StockTransactions lists the item's audit trail, newest first.
func (h *InventoryHandler) StockTransactions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	resp, err := h.svc.ListStockTransactions(c.Request.Context(), id, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
