package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tantsuball/internal/models"
)

func TestLoad(t *testing.T) {
	inv, err := Load()
	require.NoError(t, err)

	assert.Len(t, inv.Dances, 8)
	assert.Len(t, inv.Partners, 6)
	assert.Len(t, inv.Events, 4)
	assert.Len(t, inv.Users, 1)
	assert.Len(t, inv.Bookings, 1)

	assert.Equal(t, "test@example.com", inv.Users[0].Email)
	assert.Equal(t, "1", inv.Users[0].ID)
}

func TestEventDancesAreSubsetOfCatalog(t *testing.T) {
	inv, err := Load()
	require.NoError(t, err)

	danceIDs := make(map[string]bool)
	for _, d := range inv.Dances {
		danceIDs[d.ID] = true
	}

	for _, e := range inv.Events {
		require.NotEmpty(t, e.Dances, "event %s has no dances", e.ID)
		for _, d := range e.Dances {
			assert.True(t, danceIDs[d.ID], "event %s references unknown dance %s", e.ID, d.ID)
		}
	}
}

func TestLatinEventOffersOnlyLatinDances(t *testing.T) {
	inv, err := Load()
	require.NoError(t, err)

	var latin *models.Event
	for i := range inv.Events {
		if inv.Events[i].ID == "2" {
			latin = &inv.Events[i]
		}
	}
	require.NotNil(t, latin)

	assert.Len(t, latin.Dances, 4)
	assert.False(t, latin.HasDance("3"), "Tango should not be offered at the Latin event")
	assert.True(t, latin.HasDance("1"), "Samba should be offered at the Latin event")
}

func TestValidateRejectsBrokenReferences(t *testing.T) {
	inv, err := Load()
	require.NoError(t, err)

	inv.Bookings = append(inv.Bookings, models.Booking{
		ID:      "99",
		UserID:  "1",
		EventID: "2",
		DanceID: "3", // Tango is not offered at event 2
	})

	assert.Error(t, inv.Validate())
}

func TestValidateRejectsBadExperienceLevel(t *testing.T) {
	inv, err := Load()
	require.NoError(t, err)

	inv.Partners[0].Experience = "expert"
	assert.Error(t, inv.Validate())
}
