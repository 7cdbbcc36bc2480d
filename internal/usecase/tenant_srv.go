package usecase

import (
	"context"
	"fmt"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TenantService interface {
	// Landlord view of the people booked into their properties
	ListLandlordTenants(ctx context.Context, landlordID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TenantResponse], error)

	// Tenant history
	ListTenantBookings(ctx context.Context, tenantID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListTenantPayments(ctx context.Context, tenantID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
}

type tenantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTenantService(repo *repository.Repository, log *zap.Logger) TenantService {
	return &tenantService{
		repo: repo,
		log:  log.With(zap.String("service", "tenant")),
	}
}

func (s *tenantService) ListLandlordTenants(ctx context.Context, landlordID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TenantResponse], error) {
	normalizePage(req)

	tenants, err := s.repo.Booking.TenantsByLandlord(ctx, landlordID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	total, err := s.repo.Booking.CountTenantsByLandlord(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("count tenants: %w", err)
	}

	data := make([]response.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		data = append(data, response.TenantToResponse(t))
	}
	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *tenantService) ListTenantBookings(ctx context.Context, tenantID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	normalizePage(req)

	filter := entity.BookingFilter{TenantID: &tenantID}
	bookings, err := s.repo.Booking.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list tenant bookings: %w", err)
	}
	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count tenant bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}

func (s *tenantService) ListTenantPayments(ctx context.Context, tenantID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	normalizePage(req)

	payments, err := s.repo.Payment.FindByTenantID(ctx, tenantID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list tenant payments: %w", err)
	}
	total, err := s.repo.Payment.CountByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("count tenant payments: %w", err)
	}

	data := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		data = append(data, response.PaymentDetailToResponse(p))
	}
	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}
