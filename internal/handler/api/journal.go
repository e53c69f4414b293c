package api

import (
	"net/http"
	"strconv"

	resdto "auction-sync/internal/handler/dto/response"
	"auction-sync/internal/handler/httperr"
	"auction-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	q queries.JournalQueries
}

func NewJournalHandler(q queries.JournalQueries) *JournalHandler {
	return &JournalHandler{q: q}
}

// @Summary Recent actions
// @Description Actions performed through this service, newest first
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {array} resdto.JournalEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/journal [get]
func (h *JournalHandler) Recent(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = iv
	}
	entries, err := h.q.Recent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load journal", nil)
		return
	}
	res, err := resdto.FromJournalEntries(entries)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load journal", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": res})
}
