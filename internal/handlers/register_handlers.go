package handlers

import (
	"net/http"

	"github.com/SscSPs/retail_pos_app/cmd/docs"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/middleware"
	"github.com/SscSPs/retail_pos_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiLimiter may be nil to disable rate limiting on /api/v1.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	r.GET("/health", healthCheck)

	// Register public authentication routes
	registerAuthRoutes(r, services.User, services.Token)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, apiLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	r.GET("/api/v1/health", healthCheck)

	handlers := []gin.HandlerFunc{}
	if apiLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(apiLimiter))
	}
	handlers = append(handlers, middleware.AuthMiddleware(cfg.JWTSecret))
	v1 := r.Group("/api/v1", handlers...)

	registerUserRoutes(v1, service.User)
	registerCreditSaleRoutes(v1, service.CreditSale)
	registerTransactionRoutes(v1, service.Transaction)
	registerServiceOrderRoutes(v1, service.ServiceOrder)
	registerCashSessionRoutes(v1, service.CashSession)
	registerSettingsRoutes(v1, service.Settings)
	registerReportingRoutes(v1, service.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// RegisterValidators adds the domain enum validations used in binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).IsValid()
	})
}

// healthCheck godoc
// @Summary Show the status of server.
// @Description Reports that the API process is up.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
