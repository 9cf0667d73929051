package handler

import (
	"context"
	"log/slog"
	"net/http"

	"job_board/internal/middleware"
	"job_board/internal/service"
	"job_board/internal/utils"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the business services the HTTP surface depends on.
type Services struct {
	Auth         service.AuthService
	Accounts     service.AccountService
	Companies    service.CompanyService
	Jobs         service.JobService
	Applications service.ApplicationService
}

// NewRouter builds the gin engine with every route under /api.
func NewRouter(logger *slog.Logger, jwtUtil *utils.JWTUtil, v *validation.Validator, svcs Services, db Pinger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(logger), middleware.CORS(), middleware.ErrorHandler(logger))
	router.NoRoute(middleware.NotFoundHandler())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	api := router.Group("/api")
	NewAuthHandler(svcs.Auth).RegisterAuthRoutes(api, jwtAuthMW, v)
	NewAccountHandler(svcs.Accounts).RegisterAccountRoutes(api, jwtAuthMW, v)
	NewCompanyHandler(svcs.Companies).RegisterCompanyRoutes(api, jwtAuthMW, v)
	NewJobHandler(svcs.Jobs, svcs.Applications).RegisterJobRoutes(api, jwtAuthMW, v)
	NewApplicationHandler(svcs.Applications).RegisterApplicationRoutes(api, jwtAuthMW, v, svcs.Accounts.OwnerOf)

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			logger.Warn("health check failed", slog.Any("error", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
