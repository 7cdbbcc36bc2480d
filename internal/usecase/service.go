package usecase

import (
	"dorm-rental/internal/data/repository"
	"dorm-rental/pkg/cache"
	"dorm-rental/pkg/storage"
	"dorm-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Property     PropertyService
	Room         RoomService
	Booking      BookingService
	Tenant       TenantService
	Dashboard    DashboardService
	Verification VerificationService
	Report       ReportService
	Review       ReviewService
	Export       ExportService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	cache cache.Cache,
	store storage.FileStore,
	log *zap.Logger,
) *Service {
	verification := NewVerificationService(repo, store, log)
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo, log),
		Property:     NewPropertyService(repo, verification, store, log),
		Room:         NewRoomService(repo, log),
		Booking:      NewBookingService(repo, cache, log),
		Tenant:       NewTenantService(repo, log),
		Dashboard:    NewDashboardService(repo, verification, cache, config.Dashboard, config.Redis.TTL, log),
		Verification: verification,
		Report:       NewReportService(repo, log),
		Review:       NewReviewService(repo, log),
		Export:       NewExportService(repo, log),
	}
}
