package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*entity.PropertySummary, error)
	CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int64, error)
	ListPublished(ctx context.Context, filter entity.PropertyFilter, limit, offset int) ([]*entity.PropertySummary, error)
	CountPublished(ctx context.Context, filter entity.PropertyFilter) (int64, error)
	FindPublishedSummary(ctx context.Context, id uuid.UUID) (*entity.PropertySummary, error)
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

const propertyColumns = `p.id, p.landlord_id, p.name, p.description, p.property_type, p.address, p.city,
		       p.latitude, p.longitude, p.amenities, p.rules, p.images, p.credentials,
		       p.is_eligible, p.status, p.created_at, p.updated_at, p.deleted_at`

const propertySummarySelect = `
		SELECT ` + propertyColumns + `,
		       COUNT(r.id) AS room_count,
		       COUNT(r.id) FILTER (WHERE r.status = 'available') AS available_rooms,
		       COALESCE(MIN(r.monthly_rate) FILTER (WHERE r.monthly_rate > 0), 0)::float8 AS starting_rate,
		       COALESCE((SELECT AVG(rv.rating) FROM reviews rv WHERE rv.property_id = p.id), 0)::float8 AS average_rating
		FROM properties p
		LEFT JOIN rooms r ON r.property_id = p.id
		WHERE p.deleted_at IS NULL`

func propertyFields(p *entity.Property) []any {
	return []any{
		&p.ID,
		&p.LandlordID,
		&p.Name,
		&p.Description,
		&p.PropertyType,
		&p.Address,
		&p.City,
		&p.Latitude,
		&p.Longitude,
		&p.Amenities,
		&p.Rules,
		&p.Images,
		&p.Credentials,
		&p.IsEligible,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	}
}

func scanPropertySummary(row pgx.Row) (*entity.PropertySummary, error) {
	var s entity.PropertySummary
	dest := append(propertyFields(&s.Property), &s.RoomCount, &s.AvailableRooms, &s.StartingRate, &s.AverageRating)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &s, nil
}

// textArray keeps NOT NULL array columns from receiving NULL.
func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (r *propertyRepository) Create(ctx context.Context, p *entity.Property) error {
	query := `
		INSERT INTO properties (id, landlord_id, name, description, property_type, address, city,
		                        latitude, longitude, amenities, rules, images, credentials,
		                        is_eligible, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.LandlordID,
		p.Name,
		p.Description,
		p.PropertyType,
		p.Address,
		p.City,
		p.Latitude,
		p.Longitude,
		textArray(p.Amenities),
		textArray(p.Rules),
		textArray(p.Images),
		textArray(p.Credentials),
		p.IsEligible,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("landlord_id", p.LandlordID.String()),
			zap.String("name", p.Name),
		)
		return fmt.Errorf("create property %s: %w", p.Name, err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties p WHERE p.id = $1 AND p.deleted_at IS NULL`

	var p entity.Property
	err := r.db.QueryRow(ctx, query, id).Scan(propertyFields(&p)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return &p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *entity.Property) error {
	query := `
		UPDATE properties
		SET name = $2, description = $3, property_type = $4, address = $5, city = $6,
		    latitude = $7, longitude = $8, amenities = $9, rules = $10, images = $11,
		    credentials = $12, is_eligible = $13, status = $14, updated_at = $15
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.PropertyType,
		p.Address,
		p.City,
		p.Latitude,
		p.Longitude,
		textArray(p.Amenities),
		textArray(p.Rules),
		textArray(p.Images),
		textArray(p.Credentials),
		p.IsEligible,
		p.Status,
		p.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", p.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", p.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", p.ID.String())
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE properties SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	r.log.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}

func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*entity.PropertySummary, error) {
	query := propertySummarySelect + `
		  AND p.landlord_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.querySummaries(ctx, "list landlord properties", query, landlordID, limit, offset)
}

func (r *propertyRepository) CountByLandlord(ctx context.Context, landlordID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM properties WHERE landlord_id = $1 AND deleted_at IS NULL`

	var total int64
	if err := r.db.QueryRow(ctx, query, landlordID).Scan(&total); err != nil {
		r.log.Error("Failed to count landlord properties",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return 0, fmt.Errorf("count properties for landlord %s: %w", landlordID.String(), err)
	}

	return total, nil
}

// publishedConditions renders the filter as extra WHERE clauses starting at
// placeholder $1.
func publishedConditions(filter entity.PropertyFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(" AND p.status = 'published'")

	args := []any{}
	argCount := 1

	if filter.City != "" {
		sb.WriteString(fmt.Sprintf(" AND p.city ILIKE $%d", argCount))
		args = append(args, "%"+filter.City+"%")
		argCount++
	}
	if filter.PropertyType != "" {
		sb.WriteString(fmt.Sprintf(" AND p.property_type = $%d", argCount))
		args = append(args, filter.PropertyType)
		argCount++
	}
	if filter.Search != "" {
		sb.WriteString(fmt.Sprintf(" AND (p.name ILIKE $%d OR p.address ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
	}

	return sb.String(), args
}

func (r *propertyRepository) ListPublished(ctx context.Context, filter entity.PropertyFilter, limit, offset int) ([]*entity.PropertySummary, error) {
	conditions, args := publishedConditions(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(propertySummarySelect)
	queryBuilder.WriteString(conditions)
	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY p.id ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	return r.querySummaries(ctx, "list published properties", queryBuilder.String(), args...)
}

func (r *propertyRepository) CountPublished(ctx context.Context, filter entity.PropertyFilter) (int64, error) {
	conditions, args := publishedConditions(filter)
	query := `SELECT COUNT(*) FROM properties p WHERE p.deleted_at IS NULL` + conditions

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count published properties", zap.Error(err))
		return 0, fmt.Errorf("count published properties: %w", err)
	}

	return total, nil
}

func (r *propertyRepository) FindPublishedSummary(ctx context.Context, id uuid.UUID) (*entity.PropertySummary, error) {
	query := propertySummarySelect + `
		  AND p.id = $1 AND p.status = 'published'
		GROUP BY p.id
	`

	summary, err := scanPropertySummary(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find published property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find published property %s: %w", id.String(), err)
	}

	return summary, nil
}

func (r *propertyRepository) querySummaries(ctx context.Context, operation, query string, args ...any) ([]*entity.PropertySummary, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+operation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	var properties []*entity.PropertySummary
	for rows.Next() {
		summary, err := scanPropertySummary(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, summary)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate property rows: %w", err)
	}

	return properties, nil
}
