package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/telco_churn/backend/internal/config"
	"github.com/telco_churn/backend/internal/contract"
	"github.com/telco_churn/backend/internal/http/handlers"
	"github.com/telco_churn/backend/internal/http/middleware"
	"github.com/telco_churn/backend/internal/service"

	_ "github.com/telco_churn/backend/docs"
)

func Router(cfg config.Config, predictor *service.Predictor, logger zerolog.Logger) (*gin.Engine, error) {
	tmpl, err := handlers.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.SetHTMLTemplate(tmpl)

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// an empty allow-list leaves cross-origin requests without CORS headers
	origins := cfg.CORSOrigins()
	switch {
	case len(origins) == 1 && origins[0] == "*":
		corsCfg.AllowAllOrigins = true
		r.Use(cors.New(corsCfg))
	case len(origins) > 0:
		corsCfg.AllowOrigins = origins
		r.Use(cors.New(corsCfg))
	}

	h := &handlers.Handler{
		Contract:     contract.New(validator.New()),
		Predictor:    predictor,
		Logger:       logger,
		MaxBodyBytes: cfg.MaxBodyKB << 10,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/schema", h.Schema)
	r.POST("/predict_churn", h.PredictChurn)

	r.GET("/", h.Form)
	r.POST("/", h.SubmitForm)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}
