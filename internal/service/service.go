package service

import (
	"tantsuball/internal/messaging"
	"tantsuball/internal/repository"
	"tantsuball/internal/session"
	"tantsuball/internal/workflow"
)

type Services struct {
	Auth     *AuthService
	Catalog  *CatalogService
	Bookings *BookingService
	Workflow *WorkflowService
}

func NewServices(repos *repository.Repositories, sessions session.Store, natsClient *messaging.NATSClient) *Services {
	authService := NewAuthService(repos.Users, sessions, natsClient)
	catalogService := NewCatalogService(repos.Events, repos.Partners, repos.Dances)
	bookingService := NewBookingService(repos.Bookings, natsClient)
	workflowService := NewWorkflowService(workflow.NewDrafts(), repos.Events, repos.Dances, repos.Partners, bookingService)

	return &Services{
		Auth:     authService,
		Catalog:  catalogService,
		Bookings: bookingService,
		Workflow: workflowService,
	}
}
