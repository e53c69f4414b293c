package api

import (
	"net/http"

	reqdto "auction-sync/internal/handler/dto/request"
	resdto "auction-sync/internal/handler/dto/response"
	"auction-sync/internal/handler/httperr"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/commands"
	"auction-sync/internal/usecase/coordinator"

	"github.com/gin-gonic/gin"
)

type ActionHandler struct {
	cmds commands.ActionCommands
}

func NewActionHandler(cmds commands.ActionCommands) *ActionHandler {
	return &ActionHandler{cmds: cmds}
}

// @Summary Place bid
// @Description Bid on the open auction. The amount is in ether.
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceBidRequest true "Bid"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/actions/bid [post]
func (h *ActionHandler) PlaceBid(c *gin.Context) {
	var req reqdto.PlaceBidRequest
	if !bind(c, &req) {
		return
	}
	respondOutcome(c, h.cmds.PlaceBid(c.Request.Context(), req.GetAmount()))
}

// @Summary End auction
// @Description Finalize the current auction once its end time has passed (admin only)
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/actions/end [post]
func (h *ActionHandler) EndAuction(c *gin.Context) {
	respondOutcome(c, h.cmds.EndAuction(c.Request.Context()))
}

// @Summary Withdraw
// @Description Reclaim a losing bid from a finished auction
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WithdrawRequest true "Auction to withdraw from"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/actions/withdraw [post]
func (h *ActionHandler) Withdraw(c *gin.Context) {
	var req reqdto.WithdrawRequest
	if !bind(c, &req) {
		return
	}
	respondOutcome(c, h.cmds.Withdraw(c.Request.Context(), req.AuctionID))
}

// @Summary Create auction
// @Description Start a new auction (admin only, no auction in progress)
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAuctionRequest true "Auction"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/actions/auctions [post]
func (h *ActionHandler) CreateAuction(c *gin.Context) {
	var req reqdto.CreateAuctionRequest
	if !bind(c, &req) {
		return
	}
	respondOutcome(c, h.cmds.CreateAuction(c.Request.Context(), req.Product, req.GetDurationMinutes()))
}

// @Summary Change admin
// @Description Hand the admin role to another identity (admin only)
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChangeAdminRequest true "New admin"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/actions/admin [post]
func (h *ActionHandler) ChangeAdmin(c *gin.Context) {
	var req reqdto.ChangeAdminRequest
	if !bind(c, &req) {
		return
	}
	respondOutcome(c, h.cmds.ChangeAdmin(c.Request.Context(), req.NewAdmin))
}

// @Summary Resync
// @Description Rebuild the snapshot now. Concurrent requests share one rebuild.
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ResyncResponse
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/resync [post]
func (h *ActionHandler) Resync(c *gin.Context) {
	asOf, err := h.cmds.Resync(c.Request.Context())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Ledger unavailable", nil)
		case errs.Is(err, errs.ErrPartialRead):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Ledger read failed; previous snapshot kept", nil)
		default:
			httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Resync did not complete", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.ResyncResponse{AsOf: asOf})
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return false
	}
	return true
}

func respondOutcome(c *gin.Context, o coordinator.Outcome) {
	res := resdto.FromOutcome(o)
	if o.Succeeded() {
		c.JSON(http.StatusOK, res)
		return
	}
	httperr.AbortWithCode(c, outcomeStatus(o.Kind), errs.New(o.Reason), string(o.Kind), o.Reason, res)
}

func outcomeStatus(kind coordinator.OutcomeKind) int {
	switch kind {
	case coordinator.OutcomeConfirmed:
		return http.StatusOK
	case coordinator.OutcomeGuardRejected:
		return http.StatusUnprocessableEntity
	case coordinator.OutcomeLedgerRejected:
		return http.StatusConflict
	case coordinator.OutcomeLedgerFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
