// Package inventory holds the fixed entity seed the service starts
// with. The collections are loaded once and treated as read-only
// reference data; only users and bookings grow at runtime, and that
// happens in the repositories, never here.
package inventory

import "tantsuball/internal/models"

// Inventory is the entity seed available at start-up.
type Inventory struct {
	Dances   []models.Dance
	Partners []models.Partner
	Events   []models.Event
	Users    []models.User
	Bookings []models.Booking
}

// Load builds the seed inventory and verifies its integrity.
func Load() (*Inventory, error) {
	dances := seedDances()
	inv := &Inventory{
		Dances:   dances,
		Partners: seedPartners(),
		Events:   seedEvents(dances),
		Users:    seedUsers(),
		Bookings: seedBookings(),
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}
