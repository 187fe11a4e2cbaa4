package handlers

import (
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	registerGenerateRoutes(v1, services.Generator)

	companias := v1.Group("/companias/:companyID")
	registerEventRoutes(companias, services.Event, services.Rule)
	registerRuleRoutes(companias, services.Rule)
	registerMappingRoutes(companias, services.Mapping)
}
