package handler

import (
	"net/http"
	"os"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/config"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/middleware"
	"github.com/iamumarjaved/padelbridge1/internal/service"
	"github.com/iamumarjaved/padelbridge1/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	svc service.BookingService
	cfg *config.Config
}

func NewBookingHandler(svc service.BookingService, cfg *config.Config) *BookingHandler {
	return &BookingHandler{svc: svc, cfg: cfg}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	createdByID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid token subject"))
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req, createdByID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) List(c *gin.Context) {
	var filter dto.BookingFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateBookingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus moves a booking to COMPLETED or CANCELLED. Completing
// triggers background receipt generation.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateBookingStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) AddExtraHours(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AddExtraHoursRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddExtraHours(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadReceipt serves the receipt PDF rendered by the background worker.
// 404 until the worker has processed the completion job.
func (h *BookingHandler) DownloadReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	path := worker.ReceiptPath(h.cfg.ReceiptStoragePath, id.String())
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("receipt not generated yet"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="receipt-`+id.String()[:8]+`.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
