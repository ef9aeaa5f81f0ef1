package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

func testRepos(t *testing.T) *Repositories {
	t.Helper()
	inv, err := inventory.Load()
	require.NoError(t, err)
	return NewRepositories(inv, 0)
}

func TestEventListAndFilter(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	events, err := repos.Events.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, events, 4)

	events, err = repos.Events.List(ctx, "sügiball", "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "1", events[0].ID)

	events, err = repos.Events.List(ctx, "", "2025-12-05")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "3", events[0].ID)
}

func TestEventGetByID(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	event, err := repos.Events.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Sügiball", event.Title)
	assert.True(t, event.HasDance("3"))

	event, err = repos.Events.GetByID(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestPartnerAvailabilityIsStatic(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	partner, err := repos.Partners.GetByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, partner)
	assert.False(t, partner.Available, "Sofia R. is seeded unavailable")

	partner, err = repos.Partners.GetByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, partner)
	assert.True(t, partner.Available)
}

func TestUserCreateAssignsSequentialID(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	user := &models.User{Name: "New User", Email: "new@example.com", Password: "secret123"}
	require.NoError(t, repos.Users.Create(ctx, user))
	assert.Equal(t, "2", user.ID)

	found, err := repos.Users.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
}

func TestBookingRoundTrip(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	booking := &models.Booking{
		UserID:    "1",
		EventID:   "1",
		DanceID:   "3",
		Confirmed: true,
	}
	require.NoError(t, repos.Bookings.Create(ctx, booking))
	assert.NotEmpty(t, booking.ID)

	bookings, err := repos.Bookings.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2) // seed booking plus the new one

	require.NoError(t, repos.Bookings.Delete(ctx, booking.ID))

	bookings, err = repos.Bookings.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.NotEqual(t, booking.ID, bookings[0].ID)
}

func TestListByUserFiltersOtherUsers(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	bookings, err := repos.Bookings.ListByUser(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSimulateHonorsCancellation(t *testing.T) {
	inv, err := inventory.Load()
	require.NoError(t, err)
	repos := NewRepositories(inv, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repos.Events.List(ctx, "", "")
	assert.ErrorIs(t, err, context.Canceled)
}
