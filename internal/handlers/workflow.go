package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tantsuball/internal/middleware"
	"tantsuball/internal/models"
)

// GetWorkflow - GET /api/workflow
// Текущее состояние черновика бронирования
func (h *Handlers) GetWorkflow(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())
	c.JSON(http.StatusOK, h.services.Workflow.Current(token))
}

// ChooseDance - POST /api/workflow/dance
// Выбрать танец на событии
func (h *Handlers) ChooseDance(c *gin.Context) {
	var req models.ChooseDanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, _ := middleware.SessionTokenFromContext(c.Request.Context())

	resp, err := h.services.Workflow.ChooseDance(c.Request.Context(), token, req.EventID, req.DanceID)
	if err != nil {
		slog.Warn("Failed to choose dance",
			"event_id", req.EventID, "dance_id", req.DanceID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChoosePartner - POST /api/workflow/partner
// Выбрать партнера
func (h *Handlers) ChoosePartner(c *gin.Context) {
	var req models.ChoosePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, _ := middleware.SessionTokenFromContext(c.Request.Context())

	resp, err := h.services.Workflow.ChoosePartner(c.Request.Context(), token, req.PartnerID)
	if err != nil {
		slog.Warn("Failed to choose partner", "partner_id", req.PartnerID, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SkipPartner - POST /api/workflow/skip
// Пропустить выбор партнера
func (h *Handlers) SkipPartner(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())

	resp, err := h.services.Workflow.SkipPartner(token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// WorkflowBack - POST /api/workflow/back
// Вернуться на предыдущий шаг
func (h *Handlers) WorkflowBack(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())
	c.JSON(http.StatusOK, h.services.Workflow.Back(token))
}

// ConfirmBooking - POST /api/workflow/confirm
// Подтвердить бронирование
func (h *Handlers) ConfirmBooking(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())

	booking, err := h.services.Workflow.Confirm(c.Request.Context(), token, userID(c))
	if err != nil {
		slog.Warn("Failed to confirm booking", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// AbandonWorkflow - DELETE /api/workflow
// Отказаться от черновика бронирования
func (h *Handlers) AbandonWorkflow(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())
	h.services.Workflow.Abandon(token)
	c.Status(http.StatusOK)
}
