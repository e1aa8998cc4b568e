package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financialRecordHandler handles HTTP requests for standalone income and expenses.
type financialRecordHandler struct {
	recordService portssvc.FinancialRecordSvcFacade
}

func newFinancialRecordHandler(rs portssvc.FinancialRecordSvcFacade) *financialRecordHandler {
	return &financialRecordHandler{recordService: rs}
}

// registerFinancialRecordRoutes registers routes related to financial records.
func registerFinancialRecordRoutes(rg *gin.RouterGroup, recordService portssvc.FinancialRecordSvcFacade) {
	h := newFinancialRecordHandler(recordService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.DELETE("/:id", h.deleteRecord)
	}
}

// createRecord godoc
// @Summary Add income or an expense
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateFinancialRecordRequest true "Record details"
// @Success 201 {object} dto.FinancialRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /records [post]
func (h *financialRecordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFinancialRecordResponse(record))
}

// listRecords godoc
// @Summary List income and expenses
// @Tags records
// @Produce  json
// @Param   from query string false "First day (YYYY-MM-DD)"
// @Param   to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} dto.FinancialRecordResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /records [get]
func (h *financialRecordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.ListFinancialRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := dto.ParsePeriod(params.From, params.To)
	if err != nil {
		respondError(c, logger, err, "Failed to list records")
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, logger, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFinancialRecordResponse(records))
}

// deleteRecord godoc
// @Summary Delete a record
// @Tags records
// @Param   id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Security BearerAuth
// @Router /records/{id} [delete]
func (h *financialRecordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.recordService.DeleteRecord(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete record")
		return
	}
	c.Status(http.StatusNoContent)
}
