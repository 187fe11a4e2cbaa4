package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ruleHandler handles HTTP requests for rule configuration.
type ruleHandler struct {
	ruleService portssvc.RuleSvcFacade
}

func registerRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.RuleSvcFacade) {
	h := &ruleHandler{ruleService: ruleService}
	reglas := rg.Group("/reglas")
	reglas.GET("", h.listRules)
	reglas.POST("", h.createRule)
	reglas.PUT("/:reglaID", h.updateRule)
	reglas.DELETE("/:reglaID", h.deleteRule)
}

func (h *ruleHandler) listRules(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	var eventID *string
	if id := c.Query("event_id"); id != "" {
		eventID = &id
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), companyID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponses(rules))
}

func (h *ruleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create rule request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), companyID, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

func (h *ruleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update rule request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), companyID, c.Param("reglaID"), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

func (h *ruleHandler) deleteRule(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	if err := h.ruleService.DeleteRule(c.Request.Context(), companyID, c.Param("reglaID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
