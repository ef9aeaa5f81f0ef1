package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListEvents - GET /api/events
// Получить список событий, опционально с фильтром по названию и дате
func (h *Handlers) ListEvents(c *gin.Context) {
	query := c.Query("query")
	date := c.Query("date")

	events, err := h.services.Catalog.ListEvents(c.Request.Context(), query, date)
	if err != nil {
		slog.Error("Failed to list events", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent - GET /api/events/:id
// Получить событие по идентификатору
func (h *Handlers) GetEvent(c *gin.Context) {
	event, err := h.services.Catalog.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListPartners - GET /api/partners
// Получить список партнеров
func (h *Handlers) ListPartners(c *gin.Context) {
	partners, err := h.services.Catalog.ListPartners(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list partners", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partners)
}

// GetPartner - GET /api/partners/:id
// Получить партнера по идентификатору
func (h *Handlers) GetPartner(c *gin.Context) {
	partner, err := h.services.Catalog.GetPartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, partner)
}

// ListDances - GET /api/dances
// Получить каталог танцевальных стилей
func (h *Handlers) ListDances(c *gin.Context) {
	dances, err := h.services.Catalog.ListDances(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list dances", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dances)
}
