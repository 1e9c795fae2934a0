package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"evermore/internal/models"
	"evermore/internal/services"
)

type BoardHandler struct {
	Board       *services.BoardService
	Transitions *services.TransitionService
}

func NewBoardHandler(board *services.BoardService, transitions *services.TransitionService) *BoardHandler {
	return &BoardHandler{Board: board, Transitions: transitions}
}

type boardItem struct {
	models.PipelineItem
	Column string `json:"column"`
}

// @Summary      Pipeline board
// @Description  Returns the columns and the unified inquiry/opportunity items
// @Tags         Board
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	items, err := h.Board.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]boardItem, 0, len(items))
	for _, it := range items {
		out = append(out, boardItem{PipelineItem: it, Column: services.ResolveColumn(it).Key})
	}
	c.JSON(http.StatusOK, gin.H{
		"columns": services.PipelineColumns,
		"items":   out,
	})
}

type moveRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Column string `json:"column" binding:"required"`
}

// @Summary      Move a board item
// @Description  Executes a drag-and-drop stage transition; may convert an inquiry or request a meeting intercept
// @Tags         Board
// @Accept       json
// @Produce      json
// @Param        move  body      moveRequest  true  "Item and destination column"
// @Success      200   {object}  services.MoveResult
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /board/move [post]
func (h *BoardHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the board is authoritative: resolve the item from a fresh read
	items, err := h.Board.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	var item *models.PipelineItem
	for i := range items {
		if items[i].ID == req.ItemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not on the board"})
		return
	}

	result, err := h.Transitions.RequestMove(c.Request.Context(), *item, req.Column)
	if err != nil {
		c.JSON(transitionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type confirmMeetingRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
	Subject  string    `json:"subject"`
}

// @Summary      Confirm a pending meeting
// @Description  Creates the calendar event and applies the intercepted status change
// @Tags         Board
// @Accept       json
// @Produce      json
// @Param        meeting  body      confirmMeetingRequest  true  "Meeting start time and subject"
// @Success      204      "confirmed"
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /board/meeting/confirm [post]
func (h *BoardHandler) ConfirmMeeting(c *gin.Context) {
	var req confirmMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Transitions.ConfirmMeeting(c.Request.Context(), req.StartsAt, req.Subject); err != nil {
		c.JSON(transitionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Cancel a pending meeting
// @Description  Discards the pending intercept without touching the store
// @Tags         Board
// @Success      204  "cancelled"
// @Router       /board/meeting/cancel [post]
func (h *BoardHandler) CancelMeeting(c *gin.Context) {
	h.Transitions.CancelMeeting()
	c.Status(http.StatusNoContent)
}

func transitionErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMovePending),
		errors.Is(err, services.ErrLockedItem),
		errors.Is(err, services.ErrNoPendingMeeting):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownColumn),
		errors.Is(err, services.ErrUnsupportedMove),
		errors.Is(err, services.ErrNotAnInquiry):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
