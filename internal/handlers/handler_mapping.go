package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mappingHandler handles HTTP requests for account-type mappings.
type mappingHandler struct {
	mappingService portssvc.MappingSvcFacade
}

func registerMappingRoutes(rg *gin.RouterGroup, mappingService portssvc.MappingSvcFacade) {
	h := &mappingHandler{mappingService: mappingService}
	mapeos := rg.Group("/mapeos")
	mapeos.GET("", h.listMappings)
	mapeos.POST("", h.createMapping)
	mapeos.GET("/sugerencias/:tipoCuenta", h.suggest)
	mapeos.POST("/auto", h.autoMapAll)
	mapeos.POST("/auto/:tipoCuenta", h.autoMapOne)
}

func (h *mappingHandler) listMappings(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	mappings, err := h.mappingService.ListMappings(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMappingResponses(mappings))
}

func (h *mappingHandler) createMapping(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create mapping request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	mapping, err := h.mappingService.CreateMapping(c.Request.Context(), companyID, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMappingResponse(mapping))
}

func (h *mappingHandler) suggest(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	topN := 5
	if raw := c.Query("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid top parameter"})
			return
		}
		topN = parsed
	}

	suggestions, err := h.mappingService.Suggest(c.Request.Context(), companyID, c.Param("tipoCuenta"), topN)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSuggestionResponses(suggestions))
}

func (h *mappingHandler) autoMapOne(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	result, err := h.mappingService.AutoMapOne(c.Request.Context(), companyID, c.Param("tipoCuenta"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *mappingHandler) autoMapAll(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	summary, err := h.mappingService.AutoMapAll(c.Request.Context(), companyID, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
