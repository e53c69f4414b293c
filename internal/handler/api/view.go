package api

import (
	"net/http"
	"strconv"

	resdto "auction-sync/internal/handler/dto/response"
	"auction-sync/internal/handler/httperr"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	q queries.ViewQueries
}

func NewViewHandler(q queries.ViewQueries) *ViewHandler {
	return &ViewHandler{q: q}
}

// @Summary Current view
// @Description Latest published ledger snapshot with the facts derived from it
// @Tags view
// @Produce json
// @Success 200 {object} resdto.SyncViewResponse
// @Failure 503 {object} httperr.Response
// @Router /api/view [get]
func (h *ViewHandler) Current(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncView(view))
}

// @Summary Finished auction
// @Description Product, winner and winning amount of a finished auction
// @Tags view
// @Produce json
// @Param id path int true "Auction ID"
// @Success 200 {object} resdto.AuctionRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/auctions/{id} [get]
func (h *ViewHandler) Auction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid auction id", nil)
		return
	}
	record, err := h.q.Auction(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuctionRecord(record))
}

func (h *ViewHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrNotSynced):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Ledger state not loaded yet", nil)
	case errs.Is(err, queries.ErrAuctionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Auction not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
