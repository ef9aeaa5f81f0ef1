package inventory

import "tantsuball/internal/models"

// Seed data mirrors the demo inventory the service ships with. Entity
// ids are stable strings so bookings can reference them across
// restarts.

func seedDances() []models.Dance {
	return []models.Dance{
		{
			ID:          "1",
			Name:        "Samba",
			Description: "A lively, rhythmical dance of Brazilian origin.",
			ImageURL:    "https://images.pexels.com/photos/5851031/pexels-photo-5851031.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "2",
			Name:        "Valss",
			Description: "A smooth dance characterized by long, flowing movements.",
			ImageURL:    "https://images.pexels.com/photos/8412416/pexels-photo-8412416.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "3",
			Name:        "Tango",
			Description: "A passionate dance with dramatic movements and poses.",
			ImageURL:    "https://images.pexels.com/photos/1653060/pexels-photo-1653060.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "4",
			Name:        "Cha-cha-cha",
			Description: "A fun and flirtatious dance with Cuban origin.",
			ImageURL:    "https://images.pexels.com/photos/1701202/pexels-photo-1701202.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "5",
			Name:        "Quickstep",
			Description: "A fast ballroom dance characterized by quick movements.",
			ImageURL:    "https://images.pexels.com/photos/2229872/pexels-photo-2229872.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "6",
			Name:        "Salsa",
			Description: "A popular dance developed by Cuban and Puerto Rican immigrants.",
			ImageURL:    "https://images.pexels.com/photos/2253913/pexels-photo-2253913.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "7",
			Name:        "Jive",
			Description: "A lively dance style that originated in the United States.",
			ImageURL:    "https://images.pexels.com/photos/7245263/pexels-photo-7245263.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "8",
			Name:        "Viini valss",
			Description: "The classic Viennese Waltz, an elegant ballroom dance.",
			ImageURL:    "https://images.pexels.com/photos/12932754/pexels-photo-12932754.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
	}
}

func seedPartners() []models.Partner {
	return []models.Partner{
		{
			ID:         "1",
			Name:       "Anna M.",
			ImageURL:   "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience: models.ExperienceAdvanced,
			Available:  true,
		},
		{
			ID:         "2",
			Name:       "Thomas K.",
			ImageURL:   "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience: models.ExperienceIntermediate,
			Available:  true,
		},
		{
			ID:         "3",
			Name:       "Sofia R.",
			ImageURL:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience: models.ExperienceAdvanced,
			Available:  false,
		},
		{
			ID:         "4",
			Name:       "Markus L.",
			ImageURL:   "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience: models.ExperienceBeginner,
			Available:  true,
		},
		{
			ID:         "5",
			Name:       "Elena T.",
			ImageURL:   "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience: models.ExperienceIntermediate,
			Available:  true,
		},
		{
			ID:         "6",
			Name:       "Daniel S.",
			ImageURL:   "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Experience: models.ExperienceAdvanced,
			Available:  true,
		},
	}
}

// dancesByName picks a subset of the dance seed, preserving order.
func dancesByName(dances []models.Dance, names ...string) []models.Dance {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []models.Dance
	for _, d := range dances {
		if wanted[d.Name] {
			out = append(out, d)
		}
	}
	return out
}

func seedEvents(dances []models.Dance) []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Sügiball",
			Date:        "2025-10-21",
			Time:        "18:00",
			Location:    "Grand Ballroom",
			Description: "Annual Fall Ball featuring various dance styles. Join us for an evening of elegance and dance.",
			Dances:      dances,
			ImageURL:    "https://images.pexels.com/photos/442404/pexels-photo-442404.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "2",
			Title:       "Sündmus 1: Kuupäev ja kellaeg",
			Date:        "2025-11-15",
			Time:        "19:00",
			Location:    "Crystal Hall",
			Description: "Special event showcasing Latin dances. Perfect for enthusiasts of vibrant rhythms.",
			Dances:      dancesByName(dances, "Samba", "Cha-cha-cha", "Salsa", "Jive"),
			ImageURL:    "https://images.pexels.com/photos/2240766/pexels-photo-2240766.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "3",
			Title:       "Sündmus 2: Kuupäev ja kellaeg",
			Date:        "2025-12-05",
			Time:        "20:00",
			Location:    "Palace Ballroom",
			Description: "Winter ballroom dance celebration featuring classical dances and elegant atmosphere.",
			Dances:      dancesByName(dances, "Valss", "Tango", "Quickstep", "Viini valss"),
			ImageURL:    "https://images.pexels.com/photos/3916019/pexels-photo-3916019.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
		{
			ID:          "4",
			Title:       "Sündmus 3: Kuupäev ja kellaeg",
			Date:        "2026-01-20",
			Time:        "18:30",
			Location:    "Azure Ballroom",
			Description: "New Year dance celebration with workshops and performances.",
			Dances:      dances,
			ImageURL:    "https://images.pexels.com/photos/1763075/pexels-photo-1763075.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:       "1",
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "password123",
		},
	}
}

func seedBookings() []models.Booking {
	return []models.Booking{
		{
			ID:        "1",
			UserID:    "1",
			EventID:   "1",
			DanceID:   "3",
			PartnerID: "2",
			Confirmed: true,
		},
	}
}
