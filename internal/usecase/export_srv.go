package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/request"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	exportSheet     = "Bookings"
	exportBatchSize = 500
	exportMaxRows   = 10000
)

var exportHeaders = []string{
	"Reference", "Guest", "Email", "Phone", "Property", "Room",
	"Check-in", "Check-out", "Nights", "Amount", "Status", "Payment",
	"Refund", "Cancellation Reason",
}

type ExportService interface {
	// ExportBookings renders the landlord's bookings matching the list
	// filters as an XLSX workbook.
	ExportBookings(ctx context.Context, landlordID uuid.UUID, req *request.BookingListRequest) (*bytes.Buffer, error)
}

type exportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewExportService(repo *repository.Repository, log *zap.Logger) ExportService {
	return &exportService{
		repo: repo,
		log:  log.With(zap.String("service", "export")),
	}
}

func (s *exportService) ExportBookings(ctx context.Context, landlordID uuid.UUID, req *request.BookingListRequest) (*bytes.Buffer, error) {
	normalizePage(&req.PaginatedRequest)
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	filter := entity.BookingFilter{
		LandlordID:    &landlordID,
		Status:        domain.BookingStatus(req.Status),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
		Search:        strings.TrimSpace(req.Search),
	}
	if req.PropertyID != "" {
		propertyID, err := parseID("property", req.PropertyID)
		if err != nil {
			return nil, err
		}
		filter.PropertyID = &propertyID
	}

	var bookings []*entity.BookingDetail
	for offset := 0; offset < exportMaxRows; offset += exportBatchSize {
		batch, err := s.repo.Booking.List(ctx, filter, exportBatchSize, offset)
		if err != nil {
			return nil, fmt.Errorf("export bookings: %w", err)
		}
		bookings = append(bookings, batch...)
		if len(batch) < exportBatchSize {
			break
		}
	}

	buf, err := renderBookingsSheet(bookings)
	if err != nil {
		s.log.Error("Failed to render bookings export", zap.Error(err))
		return nil, fmt.Errorf("export bookings: %w", err)
	}

	s.log.Info("Bookings exported",
		zap.String("landlord_id", landlordID.String()),
		zap.Int("rows", len(bookings)))

	return buf, nil
}

func renderBookingsSheet(bookings []*entity.BookingDetail) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, b := range bookings {
		refund := 0.0
		if b.RefundAmount != nil {
			refund = *b.RefundAmount
		}
		reason := ""
		if b.CancellationReason != nil {
			reason = *b.CancellationReason
		}

		row := []any{
			b.Reference, b.GuestName, b.GuestEmail, b.GuestPhone, b.PropertyName, b.RoomNumber,
			b.CheckIn.Format(bookingDateLayout), b.CheckOut.Format(bookingDateLayout),
			domain.Nights(b.CheckIn, b.CheckOut), b.Amount, string(b.Status), string(b.PaymentStatus),
			refund, reason,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
