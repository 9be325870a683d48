package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/thecadors/fileshare/internal/config"
	"github.com/thecadors/fileshare/internal/file"
	"github.com/thecadors/fileshare/internal/metrics"
)

// Dependencies groups the collaborators required by the HTTP router.
type Dependencies struct {
	Config      config.Config
	DB          *pgxpool.Pool
	ObjectStore *minio.Client
	FileHandler *file.Handler
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(metrics.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	if deps.FileHandler != nil {
		file.RegisterRoutes(router, deps.FileHandler)
	}

	return router
}
