package models

// LoginRequest - модель для входа пользователя
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest - модель для регистрации пользователя
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionResponse - модель ответа при входе/регистрации/восстановлении сессии
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChooseDanceRequest - модель для выбора танца в рамках бронирования
type ChooseDanceRequest struct {
	EventID string `json:"event_id" binding:"required"`
	DanceID string `json:"dance_id" binding:"required"`
}

// ChoosePartnerRequest - модель для выбора партнера
type ChoosePartnerRequest struct {
	PartnerID string `json:"partner_id" binding:"required"`
}

// CancelBookingRequest - модель для отмены бронирования
type CancelBookingRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// WorkflowResponse - текущее состояние черновика бронирования
type WorkflowResponse struct {
	Step    string   `json:"step"`
	Event   *Event   `json:"event,omitempty"`
	Dance   *Dance   `json:"dance,omitempty"`
	Partner *Partner `json:"partner,omitempty"`
	Skipped bool     `json:"partner_skipped,omitempty"`
}

// ListEventsResponse - список событий
type ListEventsResponse []Event

// ListPartnersResponse - список партнеров
type ListPartnersResponse []Partner

// ListBookingsResponse - список бронирований текущего пользователя
type ListBookingsResponse []Booking
