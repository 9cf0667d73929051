package handler

import (
	"net/http"

	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles job application requests
type ApplicationHandler struct {
	service service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(s service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: s}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	req := middleware.Payload[model.CreateApplicationRequest](c)

	application, err := h.service.Apply(c.Request.Context(), middleware.AuthUserID(c), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListForUser(c *gin.Context) {
	applications, err := h.service.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// GetApplication is visible to the applicant and to the owner of the job; the service decides.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.service.Get(c.Request.Context(), middleware.AuthUserID(c), c.Param("applicationId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.AuthUserID(c), c.Param("applicationId")); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// RegisterApplicationRoutes registers application routes. accountOwner resolves
// the owner of an account, which restricts a user's listing to that user.
func (h *ApplicationHandler) RegisterApplicationRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, v *validation.Validator, accountOwner middleware.OwnerLookup) {
	userOnly := middleware.UserMiddleware()
	anyRole := middleware.AnyRoleMiddleware()

	applications := rg.Group("/applications")
	applications.Use(authMW)
	{
		applications.POST("", userOnly, middleware.ValidateMiddleware[model.CreateApplicationRequest](v), h.Apply)
		applications.GET("/user/:userId", userOnly, middleware.OwnershipMiddleware("userId", accountOwner), h.ListForUser)
		applications.GET("/:applicationId", anyRole, h.GetApplication)
		applications.DELETE("/:applicationId", anyRole, h.DeleteApplication)
	}
}
