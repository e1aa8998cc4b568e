package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/middleware"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.POST("/format", h.formatAmount)
		currencies.POST("/parse", h.parseAmount)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the currencies and their display rules
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (e.g., USD)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	logger = logger.With(slog.String("currency_code", code))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// formatAmount godoc
// @Summary Format an amount
// @Description Renders an amount with the currency's symbol, grouping and precision
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatCurrencyRequest true "Amount and currency"
// @Success 200 {object} dto.FormatCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /currencies/format [post]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	var req dto.FormatCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FormatCurrencyResponse{
		Formatted: h.currencyService.Format(req.Amount, req.CurrencyCode),
		Symbol:    money.CurrencySymbol(req.CurrencyCode),
	})
}

// parseAmount godoc
// @Summary Parse typed money text
// @Description Strips everything but digits, sign and decimal point. Unparsable input yields 0.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseCurrencyRequest true "Text to parse"
// @Success 200 {object} dto.ParseCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /currencies/parse [post]
func (h *currencyHandler) parseAmount(c *gin.Context) {
	var req dto.ParseCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ParseCurrencyResponse{Amount: h.currencyService.Parse(req.Input)})
}
