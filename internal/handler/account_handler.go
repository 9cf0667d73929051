package handler

import (
	"net/http"

	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles requests about the caller's account and public profiles
type AccountHandler struct {
	service service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(s service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.service.Get(c.Request.Context(), middleware.AuthUserID(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	req := middleware.Payload[model.UpdateAccountRequest](c)

	account, err := h.service.Update(c.Request.Context(), middleware.AuthUserID(c), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.AuthUserID(c)); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

func (h *AccountHandler) UpdatePassword(c *gin.Context) {
	req := middleware.Payload[model.UpdatePasswordRequest](c)

	if err := h.service.UpdatePassword(c.Request.Context(), middleware.AuthUserID(c), *req); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AccountHandler) ListByRecoveryEmail(c *gin.Context) {
	profiles, err := h.service.ListByRecoveryEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// RegisterAccountRoutes registers account routes. Every route requires authentication.
func (h *AccountHandler) RegisterAccountRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, v *validation.Validator) {
	users := rg.Group("/users")
	users.Use(authMW)
	{
		users.GET("/account", h.GetAccount)
		users.PUT("/account", middleware.ValidateMiddleware[model.UpdateAccountRequest](v), h.UpdateAccount)
		users.DELETE("/account", h.DeleteAccount)
		users.PUT("/password", middleware.ValidateMiddleware[model.UpdatePasswordRequest](v), h.UpdatePassword)
		users.GET("/profile/:userId", h.GetProfile)
		users.GET("/recovery-email/:email", h.ListByRecoveryEmail)
	}
}
