package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests for the event catalog.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
	ruleService  portssvc.RuleSvcFacade
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade, ruleService portssvc.RuleSvcFacade) {
	h := &eventHandler{eventService: eventService, ruleService: ruleService}
	eventos := rg.Group("/eventos")
	eventos.GET("", h.listEvents)
	eventos.POST("", h.createEvent)
	eventos.PUT("/:eventoID", h.updateEvent)
	eventos.PATCH("/:eventoID/toggle", h.toggleEvent)
	eventos.POST("/:eventoID/reglas/defecto", h.initDefaultRules)
}

func (h *eventHandler) listEvents(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}
	autoInit := c.Query("auto_init") == "true"

	events, err := h.eventService.ListEvents(c.Request.Context(), companyID, autoInit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create event request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), companyID, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update event request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), companyID, c.Param("eventoID"), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) toggleEvent(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}

	event, err := h.eventService.ToggleEventActive(c.Request.Context(), companyID, c.Param("eventoID"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// initDefaultRules seeds the catalog's default rule set for an event that has
// none yet. The eventoID path segment is the event tipo here, matching how
// operators think of events.
func (h *eventHandler) initDefaultRules(c *gin.Context) {
	companyID, ok := companyIDFromPath(c)
	if !ok {
		return
	}
	eventoTipo := c.Param("eventoID")

	created, err := h.ruleService.InitDefaultRules(c.Request.Context(), companyID, eventoTipo, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InitDefaultRulesResponse{EventoTipo: eventoTipo, Creadas: created})
}
