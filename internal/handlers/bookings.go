package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tantsuball/internal/models"
)

// ListBookings - GET /api/bookings
// Получить список бронирований текущего пользователя
func (h *Handlers) ListBookings(c *gin.Context) {
	bookings, err := h.services.Bookings.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		slog.Error("Failed to list bookings", "error", err)
		respondError(c, err)
		return
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking - PATCH /api/bookings/cancel
// Отменить бронирование
func (h *Handlers) CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Bookings.Cancel(c.Request.Context(), userID(c), req.BookingID); err != nil {
		slog.Warn("Failed to cancel booking", "booking_id", req.BookingID, "error", err)
		respondError(c, err)
		return
	}

	// Возвращаем 200 без тела ответа
	c.Status(http.StatusOK)
}
