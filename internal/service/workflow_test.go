package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/workflow"
)

func TestWorkflowFullScenario(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	login, err := svc.Auth.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	token := login.Token

	// Choose Tango at the Fall Ball
	resp, err := svc.Workflow.ChooseDance(ctx, token, "1", "3")
	require.NoError(t, err)
	assert.Equal(t, workflow.StepPartner, resp.Step)
	assert.Equal(t, "Tango", resp.Dance.Name)

	// Skip partner selection
	resp, err = svc.Workflow.SkipPartner(token)
	require.NoError(t, err)
	assert.Equal(t, workflow.StepConfirm, resp.Step)
	assert.Nil(t, resp.Partner)

	booking, err := svc.Workflow.Confirm(ctx, token, login.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", booking.UserID)
	assert.Equal(t, "1", booking.EventID)
	assert.Equal(t, "3", booking.DanceID)
	assert.Empty(t, booking.PartnerID)
	assert.True(t, booking.Confirmed)

	// Exactly one new booking alongside the seeded one
	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, booking.ID, bookings[1].ID)

	// Successful confirm clears the draft
	assert.Equal(t, workflow.StepDance, svc.Workflow.Current(token).Step)
}

func TestWorkflowWithPartner(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()
	token := "session-token"

	_, err := svc.Workflow.ChooseDance(ctx, token, "1", "3")
	require.NoError(t, err)

	resp, err := svc.Workflow.ChoosePartner(ctx, token, "2")
	require.NoError(t, err)
	assert.Equal(t, "Thomas K.", resp.Partner.Name)

	booking, err := svc.Workflow.Confirm(ctx, token, "1")
	require.NoError(t, err)
	assert.Equal(t, "2", booking.PartnerID)
}

func TestChooseDanceNotOfferedAtEvent(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	// Tango (3) exists but is not offered at the Latin event (2)
	_, err := svc.Workflow.ChooseDance(ctx, "tok", "2", "3")
	assert.ErrorIs(t, err, apperrors.ErrDanceNotInEvent)

	// The draft never advanced
	assert.Equal(t, workflow.StepDance, svc.Workflow.Current("tok").Step)
}

func TestChooseDanceUnknownIDs(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	_, err := svc.Workflow.ChooseDance(ctx, "tok", "999", "3")
	assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)

	_, err = svc.Workflow.ChooseDance(ctx, "tok", "1", "999")
	assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)
}

func TestChooseUnavailablePartner(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()
	token := "tok"

	_, err := svc.Workflow.ChooseDance(ctx, token, "1", "3")
	require.NoError(t, err)

	// Sofia R. is seeded unavailable
	_, err = svc.Workflow.ChoosePartner(ctx, token, "3")
	assert.ErrorIs(t, err, apperrors.ErrPartnerUnavailable)

	_, err = svc.Workflow.ChoosePartner(ctx, token, "999")
	assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)
}

func TestConfirmRequiresAuthentication(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()
	token := "tok"

	_, err := svc.Workflow.ChooseDance(ctx, token, "1", "3")
	require.NoError(t, err)
	_, err = svc.Workflow.SkipPartner(token)
	require.NoError(t, err)

	_, err = svc.Workflow.Confirm(ctx, token, "")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	// Nothing was committed
	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestConfirmOutOfOrder(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	_, err := svc.Workflow.Confirm(ctx, "tok", "1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStep)

	_, err = svc.Workflow.SkipPartner("tok")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStep)
}

func TestWorkflowBackAndForth(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()
	token := "tok"

	_, err := svc.Workflow.ChooseDance(ctx, token, "1", "3")
	require.NoError(t, err)
	_, err = svc.Workflow.ChoosePartner(ctx, token, "2")
	require.NoError(t, err)

	resp := svc.Workflow.Back(token)
	assert.Equal(t, workflow.StepPartner, resp.Step)
	assert.Equal(t, "Tango", resp.Dance.Name, "dance selection survives going back")

	// A different partner can now be chosen
	resp, err = svc.Workflow.ChoosePartner(ctx, token, "5")
	require.NoError(t, err)
	assert.Equal(t, "Elena T.", resp.Partner.Name)
}

func TestAbandonDiscardsDraft(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()
	token := "tok"

	_, err := svc.Workflow.ChooseDance(ctx, token, "1", "3")
	require.NoError(t, err)

	svc.Workflow.Abandon(token)
	assert.Equal(t, workflow.StepDance, svc.Workflow.Current(token).Step)

	// Nothing was committed for anyone
	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
