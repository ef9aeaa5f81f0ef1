package service

import (
	"context"
	"fmt"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/metrics"
	"tantsuball/internal/models"
	"tantsuball/internal/repository"
	"tantsuball/internal/workflow"
)

// WorkflowService drives the multi-step booking selection: dance, then
// partner (optional), then confirmation. The draft lives per session
// token and is only turned into a booking by Confirm.
type WorkflowService struct {
	drafts      *workflow.Drafts
	eventRepo   repository.EventRepository
	danceRepo   repository.DanceRepository
	partnerRepo repository.PartnerRepository
	bookings    *BookingService
}

func NewWorkflowService(drafts *workflow.Drafts, eventRepo repository.EventRepository, danceRepo repository.DanceRepository, partnerRepo repository.PartnerRepository, bookings *BookingService) *WorkflowService {
	return &WorkflowService{
		drafts:      drafts,
		eventRepo:   eventRepo,
		danceRepo:   danceRepo,
		partnerRepo: partnerRepo,
		bookings:    bookings,
	}
}

// Current returns the session's draft state.
func (s *WorkflowService) Current(token string) *models.WorkflowResponse {
	return draftResponse(s.drafts.Get(token))
}

// ChooseDance validates the event/dance pair and advances the draft to
// the partner step. A dance that exists but is not offered at the
// event is rejected here, before the draft can ever reach confirmation.
func (s *WorkflowService) ChooseDance(ctx context.Context, token, eventID, danceID string) (*models.WorkflowResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, apperrors.ErrSelectionNotFound
	}

	dance := event.Dance(danceID)
	if dance == nil {
		known, err := s.danceRepo.GetByID(ctx, danceID)
		if err != nil {
			return nil, fmt.Errorf("failed to get dance: %w", err)
		}
		if known == nil {
			return nil, apperrors.ErrSelectionNotFound
		}
		return nil, apperrors.ErrDanceNotInEvent
	}

	draft := s.drafts.Get(token)
	draft.SetDance(event, dance)
	metrics.WorkflowSteps.WithLabelValues(workflow.StepPartner).Inc()

	return draftResponse(draft), nil
}

// ChoosePartner picks an available partner and advances to the
// confirmation step.
func (s *WorkflowService) ChoosePartner(ctx context.Context, token, partnerID string) (*models.WorkflowResponse, error) {
	draft := s.drafts.Get(token)
	if draft.Step != workflow.StepPartner {
		return nil, apperrors.ErrInvalidStep
	}

	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	if partner == nil {
		return nil, apperrors.ErrSelectionNotFound
	}
	if !partner.Available {
		return nil, apperrors.ErrPartnerUnavailable
	}

	draft.SetPartner(partner)
	metrics.WorkflowSteps.WithLabelValues(workflow.StepConfirm).Inc()

	return draftResponse(draft), nil
}

// SkipPartner advances to the confirmation step without a partner.
func (s *WorkflowService) SkipPartner(token string) (*models.WorkflowResponse, error) {
	draft := s.drafts.Get(token)
	if draft.Step != workflow.StepPartner {
		return nil, apperrors.ErrInvalidStep
	}

	draft.SkipPartner()
	metrics.WorkflowSteps.WithLabelValues(workflow.StepConfirm).Inc()

	return draftResponse(draft), nil
}

// Back steps the draft one step backwards.
func (s *WorkflowService) Back(token string) *models.WorkflowResponse {
	draft := s.drafts.Get(token)
	draft.Back()
	metrics.WorkflowSteps.WithLabelValues(draft.Step).Inc()
	return draftResponse(draft)
}

// Confirm commits the draft as a booking for the authenticated user.
// The carried event and dance are re-resolved first; a stale draft
// resets the workflow to the dance step and reports the selection as
// gone.
func (s *WorkflowService) Confirm(ctx context.Context, token, userID string) (*models.Booking, error) {
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	draft := s.drafts.Get(token)
	if draft.Step != workflow.StepConfirm {
		return nil, apperrors.ErrInvalidStep
	}

	event, err := s.eventRepo.GetByID(ctx, draft.Event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil || !event.HasDance(draft.Dance.ID) {
		draft.Reset()
		return nil, apperrors.ErrSelectionNotFound
	}

	booking := &models.Booking{
		UserID:  userID,
		EventID: draft.Event.ID,
		DanceID: draft.Dance.ID,
	}
	if draft.Partner != nil {
		booking.PartnerID = draft.Partner.ID
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.drafts.Discard(token)
	metrics.WorkflowSteps.WithLabelValues(workflow.StepDone).Inc()

	return booking, nil
}

// Abandon discards the draft, as when the user navigates away
// mid-flow. Nothing was committed, so there is nothing to undo.
func (s *WorkflowService) Abandon(token string) {
	s.drafts.Discard(token)
}

func draftResponse(d *workflow.Draft) *models.WorkflowResponse {
	return &models.WorkflowResponse{
		Step:    d.Step,
		Event:   d.Event,
		Dance:   d.Dance,
		Partner: d.Partner,
		Skipped: d.Skipped,
	}
}
