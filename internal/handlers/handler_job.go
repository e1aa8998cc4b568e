package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jobHandler handles HTTP requests related to jobs.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

// newJobHandler creates a new jobHandler.
func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{
		jobService: js,
	}
}

// registerJobRoutes registers routes related to jobs.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade) {
	h := newJobHandler(jobService)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:id", h.getJob)
		jobs.PATCH("/:id", h.updateJob)
		jobs.POST("/:id/archive", h.archiveJob)
		jobs.DELETE("/:id", h.deleteJob)
	}
}

// createJob godoc
// @Summary Create a new job
// @Description Creates a pay profile that shifts can be logged against
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create job"
// @Security BearerAuth
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger.Info("Received request to create job", slog.String("job_name", req.Name), slog.String("pay_type", string(req.PayType)))

	job, err := h.jobService.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// listJobs godoc
// @Summary List jobs
// @Description Lists the user's jobs. Archived jobs are included only on request.
// @Tags jobs
// @Produce  json
// @Param   includeInactive query bool false "Include archived jobs"
// @Success 200 {array} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListJobsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJobs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), userID, params.IncludeInactive)
	if err != nil {
		respondError(c, logger, err, "Failed to list jobs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobResponse(jobs))
}

// getJob godoc
// @Summary Get a job by ID
// @Tags jobs
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.GetJobByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve job")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// updateJob godoc
// @Summary Update a job
// @Description Changes a job's pay profile. Earnings already stored on shifts are not repriced.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   job body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Security BearerAuth
// @Router /jobs/{id} [patch]
func (h *jobHandler) updateJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// archiveJob godoc
// @Summary Archive a job
// @Description Hides a job from default listings; its shifts are kept.
// @Tags jobs
// @Param   id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to archive job"
// @Security BearerAuth
// @Router /jobs/{id}/archive [post]
func (h *jobHandler) archiveJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.jobService.ArchiveJob(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to archive job")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteJob godoc
// @Summary Delete a job
// @Description Deletes a job. Refused while shifts reference it unless deleteShifts is set.
// @Tags jobs
// @Param   id path string true "Job ID"
// @Param   deleteShifts query bool false "Delete the job's shifts too"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job still has shifts"
// @Failure 500 {object} map[string]string "Failed to delete job"
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *jobHandler) deleteJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.DeleteJobParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), userID, c.Param("id"), params.DeleteShifts); err != nil {
		respondError(c, logger, err, "Failed to delete job")
		return
	}
	c.Status(http.StatusNoContent)
}
