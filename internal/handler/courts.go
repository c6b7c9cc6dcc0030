package handler

import (
	"net/http"

	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	svc service.CourtService
}

func NewCourtHandler(svc service.CourtService) *CourtHandler {
	return &CourtHandler{svc: svc}
}

func (h *CourtHandler) Create(c *gin.Context) {
	var req dto.CreateCourtRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CourtHandler) Get(c *gin.Context) {
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

// List returns all courts; ?active=true narrows to bookable ones.
func (h *CourtHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	resp, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CourtHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCourtRequest
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

func (h *CourtHandler) Delete(c *gin.Context) {
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
