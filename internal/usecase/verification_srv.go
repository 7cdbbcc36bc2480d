package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/storage"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VerificationService interface {
	// Landlord
	Status(ctx context.Context, landlordID uuid.UUID) (domain.VerificationStatus, error)
	MyVerification(ctx context.Context, landlordID uuid.UUID) (*response.MyVerificationResponse, error)
	Resubmit(ctx context.Context, landlordID uuid.UUID, req *request.ResubmitVerificationRequest) (*response.VerificationResponse, error)

	// Admin
	List(ctx context.Context, req *request.VerificationListRequest) (*response.PaginatedResponse[response.VerificationResponse], error)
	Review(ctx context.Context, adminID uuid.UUID, verificationID string, req *request.ReviewVerificationRequest) (*response.VerificationResponse, error)
}

type verificationService struct {
	repo  *repository.Repository
	store storage.FileStore
	log   *zap.Logger
}

func NewVerificationService(repo *repository.Repository, store storage.FileStore, log *zap.Logger) VerificationService {
	return &verificationService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "verification")),
	}
}

func (s *verificationService) Status(ctx context.Context, landlordID uuid.UUID) (domain.VerificationStatus, error) {
	latest, err := s.repo.Verification.FindLatestByLandlord(ctx, landlordID)
	if err != nil {
		return "", fmt.Errorf("get verification status: %w", err)
	}
	if latest == nil {
		return domain.VerificationNotSubmitted, nil
	}
	return latest.Status, nil
}

func (s *verificationService) MyVerification(ctx context.Context, landlordID uuid.UUID) (*response.MyVerificationResponse, error) {
	history, err := s.repo.Verification.FindByLandlord(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("get verification history: %w", err)
	}

	status := domain.VerificationNotSubmitted
	if len(history) > 0 {
		status = history[0].Status
	}

	items := make([]response.VerificationResponse, 0, len(history))
	for _, v := range history {
		items = append(items, response.VerificationToResponse(v))
	}

	return &response.MyVerificationResponse{
		Status:      status,
		CanResubmit: domain.CanResubmit(status),
		IDTypes:     domain.IDTypes,
		History:     items,
	}, nil
}

func (s *verificationService) Resubmit(ctx context.Context, landlordID uuid.UUID, req *request.ResubmitVerificationRequest) (*response.VerificationResponse, error) {
	status, err := s.Status(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if !domain.CanResubmit(status) {
		return nil, fmt.Errorf("cannot resubmit verification while it is %s", status)
	}

	fields := map[string]string{}
	idType := strings.TrimSpace(req.IDType)
	if idType == "" {
		fields["id_type"] = "is required"
	} else if !slices.Contains(domain.IDTypes, idType) {
		fields["id_type"] = "must be one of: " + strings.Join(domain.IDTypes, " ")
	}
	if req.IDFront == nil {
		fields["id_front"] = "is required"
	}
	if req.IDBack == nil {
		fields["id_back"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &utils.ValidationError{Fields: fields}
	}

	folder := "verifications/" + landlordID.String()
	front, err := s.store.Save(folder, req.IDFront)
	if err != nil {
		return nil, fmt.Errorf("save id_front: %w", err)
	}
	back, err := s.store.Save(folder, req.IDBack)
	if err != nil {
		s.store.Remove(front)
		return nil, fmt.Errorf("save id_back: %w", err)
	}

	v := &entity.VerificationRequest{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		LandlordID: landlordID,
		IDType:     idType,
		IDFront:    front,
		IDBack:     back,
		Status:     domain.VerificationPending,
	}
	if err := s.repo.Verification.Create(ctx, v); err != nil {
		s.store.Remove(front, back)
		return nil, fmt.Errorf("submit verification: %w", err)
	}

	s.log.Info("Verification submitted",
		zap.String("landlord_id", landlordID.String()),
		zap.String("verification_id", v.ID.String()),
		zap.String("previous_status", string(status)))

	resp := response.VerificationToResponse(v)
	return &resp, nil
}

func (s *verificationService) List(ctx context.Context, req *request.VerificationListRequest) (*response.PaginatedResponse[response.VerificationResponse], error) {
	normalizePage(&req.PaginatedRequest)
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	status := domain.VerificationStatus(req.Status)
	items, err := s.repo.Verification.List(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}
	total, err := s.repo.Verification.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count verifications: %w", err)
	}

	data := make([]response.VerificationResponse, 0, len(items))
	for _, item := range items {
		data = append(data, response.VerificationItemToResponse(item))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *verificationService) Review(ctx context.Context, adminID uuid.UUID, verificationID string, req *request.ReviewVerificationRequest) (*response.VerificationResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	id, err := parseID("verification", verificationID)
	if err != nil {
		return nil, err
	}
	decision, err := domain.ParseReviewDecision(req.Status)
	if err != nil {
		return nil, err
	}

	v, err := s.repo.Verification.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review verification: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("verification %s not found", verificationID)
	}
	if !domain.CanReview(v.Status, decision) {
		return nil, fmt.Errorf("cannot review verification that is already %s", v.Status)
	}

	now := time.Now()
	notes := strings.TrimSpace(req.Notes)
	applied, err := s.repo.Verification.Review(ctx, id, decision, notes, adminID, now)
	if err != nil {
		return nil, fmt.Errorf("review verification: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("cannot review verification %s: it was reviewed concurrently", verificationID)
	}

	v.Status = decision
	v.Notes = notes
	v.ReviewedBy = &adminID
	v.ReviewedAt = &now

	s.log.Info("Verification reviewed",
		zap.String("verification_id", verificationID),
		zap.String("admin_id", adminID.String()),
		zap.String("status", string(decision)))

	resp := response.VerificationToResponse(v)
	return &resp, nil
}
