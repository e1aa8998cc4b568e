package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/middleware"
	"github.com/SscSPs/shiftpay/internal/utils/shifttime"
	"github.com/gin-gonic/gin"
)

// shiftHandler handles HTTP requests related to shifts.
type shiftHandler struct {
	shiftService  portssvc.ShiftSvcFacade
	activeService portssvc.ActiveShiftService
	tick          time.Duration
	redetect      time.Duration
	clock         shifttime.Clock
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(ss portssvc.ShiftSvcFacade, as portssvc.ActiveShiftService, tick, redetect time.Duration) *shiftHandler {
	return &shiftHandler{
		shiftService:  ss,
		activeService: as,
		tick:          tick,
		redetect:      redetect,
		clock:         shifttime.SystemClock,
	}
}

// registerShiftRoutes registers routes related to shifts and the live shift view.
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade, activeService portssvc.ActiveShiftService, tick, redetect time.Duration) {
	h := newShiftHandler(shiftService, activeService, tick, redetect)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.createShift)
		shifts.GET("", h.listShifts)
		shifts.POST("/preview", h.previewEarnings)
		shifts.GET("/active", h.getActiveShift)
		shifts.GET("/active/stream", h.streamActiveShift)
		shifts.GET("/:id", h.getShift)
		shifts.PATCH("/:id", h.updateShift)
		shifts.DELETE("/:id", h.deleteShift)
	}
}

// createShift godoc
// @Summary Log a shift
// @Description Logs a work shift or leave entry. Earnings are computed once and stored.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.CreateShiftRequest true "Shift details"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create shift"
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) createShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	intent, err := req.ToIntent()
	if err != nil {
		respondError(c, logger, err, "Failed to create shift")
		return
	}
	shift, err := h.shiftService.CreateShift(c.Request.Context(), userID, intent)
	if err != nil {
		respondError(c, logger, err, "Failed to create shift")
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shifts
// @Description Lists shifts ordered by date and start time, one page at a time
// @Tags shifts
// @Produce  json
// @Param   from query string false "First day (YYYY-MM-DD)"
// @Param   to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Param   jobID query string false "Only shifts of this job"
// @Param   status query string false "Only shifts with this status"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListShifts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	shifts, next, err := h.shiftService.ListShifts(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list shifts")
		return
	}

	c.JSON(http.StatusOK, dto.ListShiftsResponse{
		Shifts:    dto.ToListShiftResponse(shifts),
		NextToken: next,
	})
}

// getShift godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce  json
// @Param   id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to retrieve shift"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// updateShift godoc
// @Summary Edit a shift
// @Description Partial update. Manually entered earnings are kept unless a new amount is sent or earningsManualOverride is set to false.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   id path string true "Shift ID"
// @Param   shift body dto.UpdateShiftRequest true "Fields to change"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to update shift"
// @Security BearerAuth
// @Router /shifts/{id} [patch]
func (h *shiftHandler) updateShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	intent, err := req.ToIntent()
	if err != nil {
		respondError(c, logger, err, "Failed to update shift")
		return
	}
	shift, err := h.shiftService.UpdateShift(c.Request.Context(), userID, c.Param("id"), intent)
	if err != nil {
		respondError(c, logger, err, "Failed to update shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// deleteShift godoc
// @Summary Delete a shift
// @Tags shifts
// @Param   id path string true "Shift ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to delete shift"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *shiftHandler) deleteShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.shiftService.DeleteShift(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete shift")
		return
	}
	c.Status(http.StatusNoContent)
}

// previewEarnings godoc
// @Summary Preview shift earnings
// @Description Prices a shift form without saving it. calculable=false means the inputs cannot be priced.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   form body dto.EarningsPreviewRequest true "Shift form"
// @Success 200 {object} dto.EarningsPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to preview earnings"
// @Security BearerAuth
// @Router /shifts/preview [post]
func (h *shiftHandler) previewEarnings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EarningsPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewEarnings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resolved, err := h.shiftService.PreviewEarnings(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to preview earnings")
		return
	}
	c.JSON(http.StatusOK, dto.ToEarningsPreviewResponse(resolved))
}

// getActiveShift godoc
// @Summary Current shift
// @Description Returns the shift running now with its countdown, or the next one to start.
// @Tags shifts
// @Produce  json
// @Success 200 {object} dto.ActiveShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to detect active shift"
// @Security BearerAuth
// @Router /shifts/active [get]
func (h *shiftHandler) getActiveShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	active, countdown, err := h.activeService.CurrentShift(c.Request.Context(), userID, h.clock())
	if err != nil {
		respondError(c, logger, err, "Failed to detect active shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToActiveShiftResponse(active, countdown))
}

// streamActiveShift godoc
// @Summary Stream the current shift
// @Description Server-sent events: "shift" when the detected shift changes, "countdown" on every tick while it runs.
// @Tags shifts
// @Produce  text/event-stream
// @Success 200 {object} dto.ActiveShiftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /shifts/active/stream [get]
func (h *shiftHandler) streamActiveShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	changes := make(chan *domain.ActiveShift)
	go func() {
		defer close(changes)
		err := h.activeService.WatchShift(ctx, userID, h.redetect, func(a *domain.ActiveShift) {
			select {
			case changes <- a:
			case <-ctx.Done():
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Active shift watch stopped", slog.String("error", err.Error()))
		}
	}()

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	tracker := &shiftTracker{h: h}
	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case a, open := <-changes:
			if !open {
				return false
			}
			cd := tracker.reset(a)
			c.SSEvent("shift", dto.ToActiveShiftResponse(tracker.current, cd))
		case <-ticker.C:
			if cd := tracker.tick(); cd != nil {
				c.SSEvent("countdown", gin.H{"countdown": cd, "remaining": dto.FormatCountdown(*cd)})
			}
		}
		return true
	})
}

// shiftTracker follows the streamed shift between ticks. Status only moves
// forward from notStarted to active; once running, the countdown ticks down
// to zero, emits that final tick, then goes quiet until the next detection.
type shiftTracker struct {
	h        *shiftHandler
	current  *domain.ActiveShift
	finished bool
}

func (t *shiftTracker) reset(a *domain.ActiveShift) *domain.Countdown {
	t.current = nil
	t.finished = false
	if a != nil {
		// private copy; the watcher keeps its own
		cp := *a
		t.current = &cp
	}
	return t.countdown()
}

func (t *shiftTracker) tick() *domain.Countdown {
	if t.finished {
		return nil
	}
	return t.countdown()
}

func (t *shiftTracker) countdown() *domain.Countdown {
	a := t.current
	if a == nil {
		return nil
	}
	now := t.h.clock()
	if a.Status == domain.WindowNotStarted {
		a.ShiftWindow.Status = shifttime.ClassifyWindow(a.StartDateTime, a.EndDateTime, now).Status
	}
	if a.Status != domain.WindowActive {
		return nil
	}
	cd := shifttime.ProjectCountdown(a.EndDateTime, now)
	if cd.Done() {
		t.finished = true
	}
	return &cd
}
