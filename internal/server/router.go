// internal/server/router.go
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"diabetes-risk/internal/common/config"
	"diabetes-risk/internal/common/logger"
	"diabetes-risk/internal/predict"
)

// NewRouter wires the questionnaire page, the JSON API, and the metrics endpoint.
func NewRouter(cfg *config.Config, handler *predict.Handler, log logger.Logger) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(log))

	router.SetHTMLTemplate(predict.PageTemplate())

	router.GET("/", handler.ShowForm)
	router.POST("/", handler.SubmitForm)

	api := router.Group("/api/v1")
	{
		api.POST("/predict", handler.Predict)
		api.GET("/health", handler.Health)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
