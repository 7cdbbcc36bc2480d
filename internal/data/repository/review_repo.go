package repository

import (
	"context"
	"errors"
	"fmt"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.ReviewWithUser, error)
	CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error)
	FindByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (*entity.Review, error)
	GetPropertyReviewStats(ctx context.Context, propertyID uuid.UUID) (float64, int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, property_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.PropertyID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("property_id", review.PropertyID.String()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.ReviewWithUser, error) {
	query := `
		SELECT rv.id, rv.user_id, rv.property_id, rv.rating, rv.comment, rv.created_at, u.name
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.property_id = $1
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, propertyID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by property",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find reviews for property %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithUser
	for rows.Next() {
		var review entity.ReviewWithUser
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.PropertyID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UserName,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE property_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, propertyID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return 0, fmt.Errorf("count reviews for property %s: %w", propertyID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) FindByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, property_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND property_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, propertyID).Scan(
		&review.ID,
		&review.UserID,
		&review.PropertyID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and property",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find review: %w", err)
	}

	return &review, nil
}

// GetPropertyReviewStats returns the average rating and review count.
func (r *reviewRepository) GetPropertyReviewStats(ctx context.Context, propertyID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)
		FROM reviews
		WHERE property_id = $1
	`

	var avgRating float64
	var count int64
	if err := r.db.QueryRow(ctx, query, propertyID).Scan(&avgRating, &count); err != nil {
		r.log.Error("Failed to get property review stats",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return 0, 0, fmt.Errorf("get property review stats: %w", err)
	}

	return avgRating, count, nil
}
