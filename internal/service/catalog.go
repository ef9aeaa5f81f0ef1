package service

import (
	"context"
	"fmt"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/models"
	"tantsuball/internal/repository"
)

// CatalogService exposes the read-only event/partner/dance inventory.
type CatalogService struct {
	eventRepo   repository.EventRepository
	partnerRepo repository.PartnerRepository
	danceRepo   repository.DanceRepository
}

func NewCatalogService(eventRepo repository.EventRepository, partnerRepo repository.PartnerRepository, danceRepo repository.DanceRepository) *CatalogService {
	return &CatalogService{
		eventRepo:   eventRepo,
		partnerRepo: partnerRepo,
		danceRepo:   danceRepo,
	}
}

func (s *CatalogService) ListEvents(ctx context.Context, query, date string) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, apperrors.ErrSelectionNotFound
	}
	return event, nil
}

func (s *CatalogService) ListPartners(ctx context.Context) ([]models.Partner, error) {
	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

func (s *CatalogService) GetPartner(ctx context.Context, id string) (*models.Partner, error) {
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	if partner == nil {
		return nil, apperrors.ErrSelectionNotFound
	}
	return partner, nil
}

func (s *CatalogService) ListDances(ctx context.Context) ([]models.Dance, error) {
	dances, err := s.danceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dances: %w", err)
	}
	return dances, nil
}
