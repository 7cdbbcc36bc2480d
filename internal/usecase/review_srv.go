package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Tenant
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	// Public
	GetPropertyReviews(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PropertyReviewsResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	propertyID, err := parseID("property", req.PropertyID)
	if err != nil {
		return nil, err
	}

	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if property == nil || property.Status != entity.PropertyStatusPublished {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	existing, err := s.repo.Review.FindByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user already reviewed this property")
	}

	comment := req.Comment
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		comment = &trimmed
		if trimmed == "" {
			comment = nil
		}
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:     userID,
		PropertyID: propertyID,
		Rating:     req.Rating,
		Comment:    comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("property_id", req.PropertyID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	userName := ""
	if user, _ := s.repo.User.FindByID(ctx, userID); user != nil {
		userName = user.Name
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("property_id", req.PropertyID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review, userName)
	return &resp, nil
}

func (s *reviewService) GetPropertyReviews(ctx context.Context, propertyID string, req *request.PaginatedRequest) (*response.PropertyReviewsResponse, error) {
	id, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}
	normalizePage(req)

	reviews, err := s.repo.Review.FindByPropertyID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get property reviews",
			zap.Error(err),
			zap.String("property_id", propertyID),
		)
		return nil, fmt.Errorf("get property reviews: %w", err)
	}

	total, err := s.repo.Review.CountByPropertyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count property reviews: %w", err)
	}

	avg, count, err := s.repo.Review.GetPropertyReviewStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property review stats: %w", err)
	}

	data := make([]response.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		data = append(data, response.ReviewToResponse(&r.Review, r.UserName))
	}

	return &response.PropertyReviewsResponse{
		Stats: response.PropertyReviewStats{
			AverageRating: avg,
			ReviewCount:   count,
		},
		Reviews: response.NewPaginatedResponse(data, req.Page, req.PerPage, total),
	}, nil
}
