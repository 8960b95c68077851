package v1

import (
	"net/http"

	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC    domain.UserUsecase
	CompanyUC domain.CompanyUsecase
	JobUC     domain.JobUsecase
	HealthUC  usecase.HealthUsecase
	Pipeline  *middleware.Pipeline
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	production := deps.Config != nil && deps.Config.GinMode == gin.ReleaseMode
	var origins []string
	if deps.Config != nil {
		origins = deps.Config.AllowedOrigins
	}

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestTime())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(origins, production))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler()) // must wrap everything that can fail
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Can't find " + c.Request.URL.Path + " on this server!"))
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		response.Entity(c, code, "", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewUserHandler(v1, deps.Pipeline, deps.UserUC)
	NewCompanyHandler(v1, deps.Pipeline, deps.CompanyUC)
	NewJobHandler(v1, deps.Pipeline, deps.JobUC)

	return r
}
