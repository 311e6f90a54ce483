package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gstr1/docs" // registers the swagger docs
	"gstr1/internal/domain"
	"gstr1/internal/handler"
	"gstr1/internal/middleware"
	"gstr1/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log zerolog.Logger,
	allowedOrigins []string,
	authSvc service.AuthService,
	gstr1H *handler.GSTR1Handler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	reports := protected.Group("/gstr1")
	reports.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleAnalyst))
	reports.GET("/overview", gstr1H.Overview)
	reports.GET("/invoices", gstr1H.Invoices)
	reports.GET("/classified", gstr1H.Classified)

	return r
}
