package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/anchalw11/website/internal/middleware"
	"github.com/anchalw11/website/internal/models"
	"github.com/anchalw11/website/internal/repository"
	"github.com/gin-gonic/gin"
)

// TradeHandler handles trade journal HTTP requests.
type TradeHandler struct {
	tradeRepo repository.TradeRepository
}

// NewTradeHandler creates a new TradeHandler instance.
func NewTradeHandler(tradeRepo repository.TradeRepository) *TradeHandler {
	return &TradeHandler{tradeRepo: tradeRepo}
}

// CreateTradeRequest represents the trade creation payload.
type CreateTradeRequest struct {
	SignalID      *int64   `json:"signal_id"`
	Date          string   `json:"date"` // RFC 3339 date, defaults to today
	Asset         string   `json:"asset" binding:"required"`
	Direction     string   `json:"direction" binding:"required,oneof=buy sell"`
	EntryPrice    float64  `json:"entry_price" binding:"required"`
	ExitPrice     float64  `json:"exit_price"`
	StopLoss      *float64 `json:"sl"`
	TakeProfit    *float64 `json:"tp"`
	LotSize       float64  `json:"lot_size"`
	TradeDuration string   `json:"trade_duration"`
	Notes         string   `json:"notes"`
	Outcome       string   `json:"outcome" binding:"omitempty,oneof=win loss pending"`
	StrategyTag   string   `json:"strategy_tag"`
	PropFirm      string   `json:"prop_firm"`
	ScreenshotURL string   `json:"screenshot_url"`
}

// Create godoc
// @Summary Record a trade
// @Description Add a trade to the authenticated user's journal
// @Tags trades
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateTradeRequest true "Trade payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /trades [post]
func (h *TradeHandler) Create(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	var req CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Missing required trade data")
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "Invalid date format, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	outcome := req.Outcome
	if outcome == "" {
		outcome = "pending"
	}

	trade := &models.Trade{
		SignalID:      req.SignalID,
		UserID:        user.ID,
		Date:          date,
		Asset:         req.Asset,
		Direction:     req.Direction,
		EntryPrice:    req.EntryPrice,
		ExitPrice:     req.ExitPrice,
		StopLoss:      req.StopLoss,
		TakeProfit:    req.TakeProfit,
		LotSize:       req.LotSize,
		TradeDuration: req.TradeDuration,
		Notes:         req.Notes,
		Outcome:       outcome,
		StrategyTag:   req.StrategyTag,
		PropFirm:      req.PropFirm,
		ScreenshotURL: req.ScreenshotURL,
	}

	if err := h.tradeRepo.Create(c.Request.Context(), trade); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			RespondError(c, http.StatusBadRequest, "Trade for this signal already recorded")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Trade added successfully",
		"trade_id": trade.ID,
	})
}

// List godoc
// @Summary List trades
// @Description List the authenticated user's trades, newest first
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Trade
// @Failure 401 {object} map[string]string
// @Router /trades [get]
func (h *TradeHandler) List(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	trades, err := h.tradeRepo.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if trades == nil {
		trades = []models.Trade{}
	}

	c.JSON(http.StatusOK, trades)
}

// Delete godoc
// @Summary Delete a trade
// @Description Delete one of the authenticated user's trades by id
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Param id path int true "Trade ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trades/{id} [delete]
func (h *TradeHandler) Delete(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	tradeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid trade id")
		return
	}

	if err := h.tradeRepo.DeleteByID(c.Request.Context(), user.ID, tradeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "Trade not found")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trade deleted successfully"})
}

// AnalyticsResponse summarizes a user's journal performance.
type AnalyticsResponse struct {
	TotalTrades int     `json:"total_trades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Pending     int     `json:"pending"`
	WinRate     float64 `json:"win_rate"`
}

// Analytics godoc
// @Summary Journal performance analytics
// @Description Win/loss summary for the authenticated user (enterprise plan only)
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /trades/analytics [get]
func (h *TradeHandler) Analytics(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	trades, err := h.tradeRepo.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp := AnalyticsResponse{TotalTrades: len(trades)}
	for _, trade := range trades {
		switch trade.Outcome {
		case "win":
			resp.Wins++
		case "loss":
			resp.Losses++
		default:
			resp.Pending++
		}
	}
	if decided := resp.Wins + resp.Losses; decided > 0 {
		resp.WinRate = float64(resp.Wins) / float64(decided)
	}

	c.JSON(http.StatusOK, resp)
}
