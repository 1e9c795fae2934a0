package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"evermore/internal/models"
	"evermore/internal/services"
)

type InquiryHandler struct {
	Service *services.InquiryService
}

func NewInquiryHandler(service *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: service}
}

// @Summary      List inquiries
// @Tags         Inquiries
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   models.Inquiry
// @Failure      502     {object}  map[string]string
// @Router       /inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.Service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// @Summary      Get an inquiry
// @Tags         Inquiries
// @Produce      json
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  models.Inquiry
// @Failure      404  {object}  map[string]string
// @Router       /inquiries/{id} [get]
func (h *InquiryHandler) GetByID(c *gin.Context) {
	inq, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if inq == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, inq)
}

// @Summary      Create an inquiry
// @Tags         Inquiries
// @Accept       json
// @Produce      json
// @Param        inquiry  body      models.Inquiry  true  "New inquiry"
// @Success      201      {object}  models.Inquiry
// @Failure      400      {object}  map[string]string
// @Router       /inquiries [post]
func (h *InquiryHandler) Create(c *gin.Context) {
	var inq models.Inquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Service.Create(c.Request.Context(), &inq); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrInvalidStatus) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inq)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Update inquiry status
// @Tags         Inquiries
// @Accept       json
// @Param        id      path      string         true  "Inquiry id"
// @Param        status  body      statusRequest  true  "New status"
// @Success      204     "updated"
// @Failure      400     {object}  map[string]string
// @Router       /inquiries/{id}/status [post]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), models.InquiryStatus(req.Status))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrInvalidStatus) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
