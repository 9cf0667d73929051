package handler

import (
	"fmt"
	"net/http"
	"strings"

	"job_board/internal/apperr"
	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company requests
type CompanyHandler struct {
	service service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(s service.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: s}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	req := middleware.Payload[model.CreateCompanyRequest](c)

	company, err := h.service.Create(c.Request.Context(), middleware.AuthUserID(c), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.service.Get(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	req := middleware.Payload[model.UpdateCompanyRequest](c)

	company, err := h.service.Update(c.Request.Context(), c.Param("companyId"), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("companyId")); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

func (h *CompanyHandler) SearchCompanies(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		middleware.AbortWithError(c, queryViolation("name", "name is required"))
		return
	}

	companies, err := h.service.SearchByName(c.Request.Context(), name)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompanyJobs(c *gin.Context) {
	jobs, err := h.service.Jobs(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *CompanyHandler) GetCompanyApplications(c *gin.Context) {
	applications, err := h.service.Applications(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *CompanyHandler) ExportApplications(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		middleware.AbortWithError(c, queryViolation("date", "date is required"))
		return
	}
	day, err := validation.ParseISODate(dateParam)
	if err != nil {
		middleware.AbortWithError(c, queryViolation("date", "date must be a valid date (YYYY-MM-DD)"))
		return
	}

	csvBuffer, err := h.service.ExportApplicationsCSV(c.Request.Context(), c.Param("companyId"), day)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	fileName := fmt.Sprintf("applications_%s_%s.csv", c.Param("companyId"), day.UTC().Format("20060102"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/csv", csvBuffer.Bytes())
}

// RegisterCompanyRoutes registers company routes. Mutations and application
// listings are limited to the company's own HR.
func (h *CompanyHandler) RegisterCompanyRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, v *validation.Validator) {
	hrOnly := middleware.HRMiddleware()
	anyRole := middleware.AnyRoleMiddleware()
	owner := middleware.Handler(middleware.Chain(
		middleware.RequireRoles(model.RoleCompanyHR),
		middleware.RequireOwnership("companyId", h.service.OwnerOf),
	))

	companies := rg.Group("/companies")
	companies.Use(authMW)
	{
		companies.POST("", hrOnly, middleware.ValidateMiddleware[model.CreateCompanyRequest](v), h.CreateCompany)
		companies.GET("/search", anyRole, h.SearchCompanies)
		companies.GET("/:companyId", anyRole, h.GetCompany)
		companies.PUT("/:companyId", owner, middleware.ValidateMiddleware[model.UpdateCompanyRequest](v), h.UpdateCompany)
		companies.DELETE("/:companyId", owner, h.DeleteCompany)
		companies.GET("/:companyId/jobs", anyRole, h.GetCompanyJobs)
		companies.GET("/:companyId/applications", owner, h.GetCompanyApplications)
		companies.GET("/:companyId/applications/export", owner, h.ExportApplications)
	}
}

func queryViolation(field, message string) error {
	return apperr.Validation([]apperr.FieldViolation{{Field: field, Message: message}})
}
