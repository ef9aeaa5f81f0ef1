package inventory

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"tantsuball/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Experience is a closed enum; registering it as a named rule keeps
	// the tag readable on the entity structs.
	_ = v.RegisterValidation("experience", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced:
			return true
		}
		return false
	})
	return v
}

// Validate checks structural validity of every seeded entity and the
// referential integrity rules bookings depend on: an event's dances
// must come from the dance catalog, and seeded bookings must point at
// an existing user, event, a dance offered by that event, and (when
// set) an existing partner.
func (inv *Inventory) Validate() error {
	for _, d := range inv.Dances {
		if err := validate.Struct(d); err != nil {
			return fmt.Errorf("invalid dance %q: %w", d.ID, err)
		}
	}
	for _, p := range inv.Partners {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("invalid partner %q: %w", p.ID, err)
		}
	}
	for _, u := range inv.Users {
		if err := validate.Struct(u); err != nil {
			return fmt.Errorf("invalid user %q: %w", u.ID, err)
		}
	}

	danceIDs := make(map[string]bool, len(inv.Dances))
	for _, d := range inv.Dances {
		danceIDs[d.ID] = true
	}

	events := make(map[string]models.Event, len(inv.Events))
	for _, e := range inv.Events {
		if err := validate.Struct(e); err != nil {
			return fmt.Errorf("invalid event %q: %w", e.ID, err)
		}
		for _, d := range e.Dances {
			if !danceIDs[d.ID] {
				return fmt.Errorf("event %q references unknown dance %q", e.ID, d.ID)
			}
		}
		events[e.ID] = e
	}

	users := make(map[string]bool, len(inv.Users))
	for _, u := range inv.Users {
		users[u.ID] = true
	}
	partners := make(map[string]bool, len(inv.Partners))
	for _, p := range inv.Partners {
		partners[p.ID] = true
	}

	for _, b := range inv.Bookings {
		if !users[b.UserID] {
			return fmt.Errorf("booking %q references unknown user %q", b.ID, b.UserID)
		}
		event, ok := events[b.EventID]
		if !ok {
			return fmt.Errorf("booking %q references unknown event %q", b.ID, b.EventID)
		}
		if !event.HasDance(b.DanceID) {
			return fmt.Errorf("booking %q references dance %q not offered at event %q", b.ID, b.DanceID, b.EventID)
		}
		if b.PartnerID != "" && !partners[b.PartnerID] {
			return fmt.Errorf("booking %q references unknown partner %q", b.ID, b.PartnerID)
		}
	}

	return nil
}
