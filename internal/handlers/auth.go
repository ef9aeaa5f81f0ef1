package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tantsuball/internal/middleware"
	"tantsuball/internal/models"
)

// Login - POST /api/auth/login
// Вход пользователя по email и паролю
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("Login failed", "email", req.Email, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register - POST /api/auth/register
// Регистрация нового пользователя
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("Registration failed", "email", req.Email, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Logout - POST /api/auth/logout
// Завершение сессии
func (h *Handlers) Logout(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())

	if err := h.services.Auth.Logout(c.Request.Context(), token); err != nil {
		slog.Error("Failed to logout", "error", err)
		respondError(c, err)
		return
	}

	// Discard any in-flight booking draft along with the session
	h.services.Workflow.Abandon(token)

	c.Status(http.StatusOK)
}

// Session - GET /api/auth/session
// Восстановление ранее сохраненной сессии
func (h *Handlers) Session(c *gin.Context) {
	token, _ := middleware.SessionTokenFromContext(c.Request.Context())

	resp, err := h.services.Auth.Restore(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
