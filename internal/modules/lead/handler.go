package lead

import (
	"errors"
	"net/http"
	"strconv"

	"leadcrm/internal/middleware"
	"leadcrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(leads *gin.RouterGroup) {
	leads.POST("", h.CreateLead)
	leads.GET("", h.ListLeads)
	leads.GET("/:id", h.GetLead)
	leads.PUT("/:id", h.UpdateLead)
	leads.DELETE("/:id", h.DeleteLead)
}

// CreateLead — POST /api/leads
func (h *Handler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	lead, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	middleware.RecordLeadCreated(string(lead.Source))
	c.JSON(http.StatusCreated, lead)
}

// ListLeads — GET /api/leads with pagination and filter parameters
func (h *Handler) ListLeads(c *gin.Context) {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}

	limit := defaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	filter := BuildFilter(c.Request.URL.Query())

	result, err := h.service.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLead — GET /api/leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	lead, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead — PUT /api/leads/:id
func (h *Handler) UpdateLead(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	lead, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead — DELETE /api/leads/:id
func (h *Handler) DeleteLead(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrEmailExists):
		response.Error(c, http.StatusConflict, "Email must be unique")
	case errors.Is(err, ErrInvalidData):
		response.Error(c, http.StatusBadRequest, "Invalid data")
	default:
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}
