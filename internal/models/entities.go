package models

// Experience levels a partner can have
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// User represents a registered user in the system.
// Password is only carried during login/registration and is never
// included in session state or API responses.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"-" validate:"required"`
}

// Sanitized returns a copy of the user with the password stripped.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Dance represents a dance style offered at events
type Dance struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

// Partner represents a dance partner available for booking
type Partner struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,url"`
	Experience string `json:"experience" validate:"required,experience"`
	Available  bool   `json:"available"`
}

// Event represents a dance event users can book
type Event struct {
	ID          string  `json:"id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string  `json:"time" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"description"`
	Dances      []Dance `json:"dances" validate:"min=1,dive"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

// HasDance reports whether the event offers the given dance.
func (e Event) HasDance(danceID string) bool {
	for _, d := range e.Dances {
		if d.ID == danceID {
			return true
		}
	}
	return false
}

// Dance returns the event's dance with the given id, or nil.
func (e Event) Dance(danceID string) *Dance {
	for i := range e.Dances {
		if e.Dances[i].ID == danceID {
			return &e.Dances[i]
		}
	}
	return nil
}

// Booking represents a confirmed reservation of a dance at an event.
// PartnerID is empty when the user skipped partner selection.
type Booking struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	EventID   string `json:"eventId"`
	DanceID   string `json:"danceId"`
	PartnerID string `json:"partnerId,omitempty"`
	Confirmed bool   `json:"confirmed"`
}
