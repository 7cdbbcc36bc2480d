package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportService interface {
	// Tenant
	SubmitReport(ctx context.Context, reporterID uuid.UUID, req *request.CreateReportRequest) (*response.ReportResponse, error)

	// Admin
	ListReports(ctx context.Context, req *request.ReportListRequest) (*response.PaginatedResponse[response.ReportResponse], error)
	UpdateReportStatus(ctx context.Context, adminID uuid.UUID, reportID string, req *request.UpdateReportStatusRequest) (*response.ReportResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) SubmitReport(ctx context.Context, reporterID uuid.UUID, req *request.CreateReportRequest) (*response.ReportResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	if err := domain.ValidateReport(req.Reason, req.Description); err != nil {
		if errors.Is(err, domain.ErrReportIncomplete) {
			return nil, &utils.ValidationError{Fields: map[string]string{
				"reason":      err.Error(),
				"description": err.Error(),
			}}
		}
		return nil, utils.NewValidationError("reason", err.Error())
	}

	propertyID, err := parseID("property", req.PropertyID)
	if err != nil {
		return nil, err
	}
	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	pending, err := s.repo.Report.HasPendingReport(ctx, reporterID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}
	if pending {
		return nil, fmt.Errorf("you already have a pending report for this property")
	}

	report := &entity.Report{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReporterID:  reporterID,
		PropertyID:  propertyID,
		Reason:      strings.TrimSpace(req.Reason),
		Description: strings.TrimSpace(req.Description),
		Status:      domain.ReportStatusPending,
	}

	if err := s.repo.Report.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}

	s.log.Info("Report submitted",
		zap.String("report_id", report.ID.String()),
		zap.String("property_id", req.PropertyID),
		zap.String("reason", report.Reason))

	resp := response.ReportToResponse(report)
	return &resp, nil
}

func (s *reportService) ListReports(ctx context.Context, req *request.ReportListRequest) (*response.PaginatedResponse[response.ReportResponse], error) {
	status, err := domain.ParseReportFilter(req.Status)
	if err != nil {
		return nil, err
	}
	normalizePage(&req.PaginatedRequest)

	reports, err := s.repo.Report.List(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	total, err := s.repo.Report.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	data := make([]response.ReportResponse, 0, len(reports))
	for _, r := range reports {
		data = append(data, response.ReportItemToResponse(r))
	}
	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *reportService) UpdateReportStatus(ctx context.Context, adminID uuid.UUID, reportID string, req *request.UpdateReportStatusRequest) (*response.ReportResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	id, err := parseID("report", reportID)
	if err != nil {
		return nil, err
	}

	report, err := s.repo.Report.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("report %s not found", reportID)
	}

	to := domain.ReportStatus(req.Status)
	if !domain.CanResolveReport(report.Status, to) {
		return nil, fmt.Errorf("cannot change report status from %s to %s", report.Status, to)
	}

	now := time.Now()
	notes := strings.TrimSpace(req.Notes)
	applied, err := s.repo.Report.Resolve(ctx, id, to, notes, adminID, now)
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("cannot change report status: report %s was already handled", reportID)
	}

	s.log.Info("Report status updated",
		zap.String("report_id", reportID),
		zap.String("status", string(to)),
		zap.String("admin_id", adminID.String()))

	report.Status = to
	report.AdminNotes = notes
	report.ResolvedBy = &adminID
	report.ResolvedAt = &now
	resp := response.ReportToResponse(report)
	return &resp, nil
}
