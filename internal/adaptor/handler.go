package adaptor

import (
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Property     *PropertyHandler
	Room         *RoomHandler
	Booking      *BookingHandler
	Tenant       *TenantHandler
	Dashboard    *DashboardHandler
	Verification *VerificationHandler
	Report       *ReportHandler
	Review       *ReviewHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	maxMemory := config.Upload.MaxBytes
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Property:     NewPropertyHandler(service.Property, maxMemory, log),
		Room:         NewRoomHandler(service.Room, log),
		Booking:      NewBookingHandler(service.Booking, service.Export, log),
		Tenant:       NewTenantHandler(service.Tenant, log),
		Dashboard:    NewDashboardHandler(service.Dashboard, log),
		Verification: NewVerificationHandler(service.Verification, maxMemory, log),
		Report:       NewReportHandler(service.Report, log),
		Review:       NewReviewHandler(service.Review, log),
	}
}
