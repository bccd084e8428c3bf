package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by every HTTP adapter.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter mounts the registrars under basePath. Middleware is installed before any route.
func NewRouter(basePath string, middleware []gin.HandlerFunc, registrars ...RouteRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := router.Group(basePath)
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}
	return router
}
