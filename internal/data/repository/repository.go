package repository

import (
	"dorm-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	DB           database.PgxIface
	User         UserRepository
	Session      SessionRepository
	Property     PropertyRepository
	Room         RoomRepository
	Booking      BookingRepository
	Payment      PaymentRepository
	Verification VerificationRepository
	Report       ReportRepository
	Review       ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:           db,
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Property:     NewPropertyRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Verification: NewVerificationRepository(db, log),
		Report:       NewReportRepository(db, log),
		Review:       NewReviewRepository(db, log),
	}
}
