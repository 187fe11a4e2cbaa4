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

// generateHandler handles HTTP requests for journal entry generation.
type generateHandler struct {
	generatorService portssvc.GeneratorSvcFacade
}

func registerGenerateRoutes(rg *gin.RouterGroup, generatorService portssvc.GeneratorSvcFacade) {
	h := &generateHandler{generatorService: generatorService}
	rg.POST("/asientos/generar", h.generate)
	rg.GET("/asientos/:asientoID", h.getEntry)
}

// generate runs the rule engine for one event occurrence, either simulating
// or persisting the resulting entry.
func (h *generateHandler) generate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind generation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.generatorService.Generate(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		logger.Warn("Generation failed",
			slog.String("evento_tipo", req.EventoTipo),
			slog.String("mode", string(req.Mode)),
			slog.String("error", err.Error()),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGenerateResponse(entry))
}

// getEntry reads back a persisted entry.
func (h *generateHandler) getEntry(c *gin.Context) {
	asientoID, err := strconv.ParseInt(c.Param("asientoID"), 10, 64)
	if err != nil || asientoID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asiento ID"})
		return
	}
	companyID, err := strconv.ParseInt(c.Query("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID"})
		return
	}

	entry, err := h.generatorService.GetEntry(c.Request.Context(), companyID, asientoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGenerateResponse(entry))
}
