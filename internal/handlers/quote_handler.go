package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"evermore/internal/pdf"
	"evermore/internal/services"
)

type QuoteHandler struct {
	Opportunities *services.OpportunityService
	Generator     pdf.Generator
}

func NewQuoteHandler(opportunities *services.OpportunityService, generator pdf.Generator) *QuoteHandler {
	return &QuoteHandler{Opportunities: opportunities, Generator: generator}
}

// @Summary      Generate a quotation PDF
// @Description  Renders the quotation document for an opportunity and returns it as a download
// @Tags         Opportunities
// @Produce      application/pdf
// @Param        id   path      string  true  "Opportunity id"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /opportunities/{id}/quote [post]
func (h *QuoteHandler) Generate(c *gin.Context) {
	id := c.Param("id")
	opp, err := h.Opportunities.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if opp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		return
	}

	path, err := h.Generator.GenerateQuote(pdf.QuoteData{
		OpportunityID: opp.ID,
		CoupleName:    opp.Name,
		Email:         opp.Email,
		Amount:        opp.Amount,
		Currency:      opp.Currency,
		CreatedAt:     opp.CreatedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to generate quote: %v", err)})
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
