package handler

import (
	"net/http"

	"job_board/internal/middleware"
	"job_board/internal/model"
	"job_board/internal/service"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	req := middleware.Payload[model.SignUpRequest](c)

	account, token, err := h.service.Register(c.Request.Context(), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account registered successfully",
		"account": account,
		"token":   token,
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	req := middleware.Payload[model.SignInRequest](c)

	account, token, err := h.service.Login(c.Request.Context(), *req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"account": account,
		"token":   token,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.AuthUserID(c)); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, v *validation.Validator) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", middleware.ValidateMiddleware[model.SignUpRequest](v), h.SignUp)
		authGroup.POST("/signin", middleware.ValidateMiddleware[model.SignInRequest](v), h.SignIn)
		authGroup.POST("/signout", authMW, h.SignOut)
	}
}
