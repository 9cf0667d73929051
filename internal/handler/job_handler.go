package handler

import (
	"net/http"

	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// JobHandler handles job requests
type JobHandler struct {
	service      service.JobService
	applications service.ApplicationService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(s service.JobService, applications service.ApplicationService) *JobHandler {
	return &JobHandler{service: s, applications: applications}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	req := middleware.Payload[model.CreateJobRequest](c)

	job, err := h.service.Create(c.Request.Context(), middleware.AuthUserID(c), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) FilterJobs(c *gin.Context) {
	filter := middleware.Payload[model.JobFilter](c)

	jobs, err := h.service.Filter(c.Request.Context(), *filter)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	req := middleware.Payload[model.UpdateJobRequest](c)

	job, err := h.service.Update(c.Request.Context(), c.Param("jobId"), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("jobId")); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *JobHandler) GetJobApplications(c *gin.Context) {
	applications, err := h.applications.ListForJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// RegisterJobRoutes registers job routes
func (h *JobHandler) RegisterJobRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, v *validation.Validator) {
	anyRole := middleware.AnyRoleMiddleware()
	owner := middleware.Handler(middleware.Chain(
		middleware.RequireRoles(model.RoleCompanyHR),
		middleware.RequireOwnership("jobId", h.service.OwnerOf),
	))

	jobs := rg.Group("/jobs")
	jobs.Use(authMW)
	{
		jobs.POST("", middleware.HRMiddleware(), middleware.ValidateMiddleware[model.CreateJobRequest](v), h.CreateJob)
		jobs.GET("", anyRole, h.ListJobs)
		jobs.POST("/filter", anyRole, middleware.ValidateMiddleware[model.JobFilter](v), h.FilterJobs)
		jobs.PUT("/:jobId", owner, middleware.ValidateMiddleware[model.UpdateJobRequest](v), h.UpdateJob)
		jobs.DELETE("/:jobId", owner, h.DeleteJob)
		jobs.GET("/:jobId/applications", owner, h.GetJobApplications)
	}
}
