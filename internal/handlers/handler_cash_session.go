package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type cashSessionHandler struct {
	cashSessionService portssvc.CashSessionSvcFacade
}

func newCashSessionHandler(s portssvc.CashSessionSvcFacade) *cashSessionHandler {
	return &cashSessionHandler{cashSessionService: s}
}

func registerCashSessionRoutes(rg *gin.RouterGroup, cashSessionService portssvc.CashSessionSvcFacade) {
	h := newCashSessionHandler(cashSessionService)

	sessions := rg.Group("/cash-sessions")
	{
		sessions.POST("", h.openCashSession)
		sessions.GET("/current", h.getCurrentCashSession)
		sessions.POST("/:sessionID/close", h.closeCashSession)
	}
}

// openCashSession godoc
// @Summary Open the register
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param session body dto.OpenCashSessionRequest true "Opening float"
// @Success 201 {object} dto.CashSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A session is already open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-sessions [post]
func (h *cashSessionHandler) openCashSession(c *gin.Context) {
	var req dto.OpenCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	session, err := h.cashSessionService.OpenCashSession(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "open cash session")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashSessionResponse(session))
}

// getCurrentCashSession godoc
// @Summary Current open register session
// @Tags cash-sessions
// @Produce json
// @Success 200 {object} dto.CashSessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No open session"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-sessions/current [get]
func (h *cashSessionHandler) getCurrentCashSession(c *gin.Context) {
	session, err := h.cashSessionService.GetCurrentCashSession(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "get cash session")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashSessionResponse(session))
}

// closeCashSession godoc
// @Summary Close the register
// @Description Compares the counted amount with the expected drawer amount.
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Cash session ID"
// @Param session body dto.CloseCashSessionRequest true "Counted amount"
// @Success 200 {object} dto.CashSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-sessions/{sessionID}/close [post]
func (h *cashSessionHandler) closeCashSession(c *gin.Context) {
	var req dto.CloseCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	session, err := h.cashSessionService.CloseCashSession(c.Request.Context(), c.Param("sessionID"), req, userID)
	if err != nil {
		respondWithError(c, err, "close cash session")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashSessionResponse(session))
}
