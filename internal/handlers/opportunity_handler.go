package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"evermore/internal/models"
	"evermore/internal/services"
)

type OpportunityHandler struct {
	Service *services.OpportunityService
}

func NewOpportunityHandler(service *services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{Service: service}
}

// @Summary      List opportunities
// @Tags         Opportunities
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   models.Opportunity
// @Failure      502     {object}  map[string]string
// @Router       /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	opportunities, err := h.Service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opportunities)
}

// @Summary      Get an opportunity
// @Tags         Opportunities
// @Produce      json
// @Param        id   path      string  true  "Opportunity id"
// @Success      200  {object}  models.Opportunity
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) GetByID(c *gin.Context) {
	opp, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if opp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		return
	}
	c.JSON(http.StatusOK, opp)
}

// @Summary      Update opportunity status
// @Tags         Opportunities
// @Accept       json
// @Param        id      path      string         true  "Opportunity id"
// @Param        status  body      statusRequest  true  "New status"
// @Success      204     "updated"
// @Failure      400     {object}  map[string]string
// @Router       /opportunities/{id}/status [post]
func (h *OpportunityHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), models.OpportunityStatus(req.Status))
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
