package repository

import (
	"context"
	"errors"
	"fmt"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/database"
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	StatsByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.RoomStats, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, property_id, room_number, room_type, pricing_model, capacity,
		       monthly_rate, daily_rate, status, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.PropertyID,
		&room.RoomNumber,
		&room.RoomType,
		&room.PricingModel,
		&room.Capacity,
		&room.MonthlyRate,
		&room.DailyRate,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, property_id, room_number, room_type, pricing_model, capacity,
		                   monthly_rate, daily_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.PropertyID,
		room.RoomNumber,
		room.RoomType,
		room.PricingModel,
		room.Capacity,
		room.MonthlyRate,
		room.DailyRate,
		room.Status,
		room.CreatedAt,
		room.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("property_id", room.PropertyID.String()),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE property_id = $1 ORDER BY room_number`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		r.log.Error("Failed to find rooms by property",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find rooms for property %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, room_type = $3, pricing_model = $4, capacity = $5,
		    monthly_rate = $6, daily_rate = $7, status = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.RoomType,
		room.PricingModel,
		room.Capacity,
		room.MonthlyRate,
		room.DailyRate,
		room.Status,
		room.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error {
	query := `UPDATE rooms SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room status %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

func (r *roomRepository) StatsByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.RoomStats, error) {
	query := `
		SELECT COUNT(r.id),
		       COUNT(r.id) FILTER (WHERE r.status = 'available'),
		       COUNT(r.id) FILTER (WHERE r.status = 'occupied'),
		       COUNT(r.id) FILTER (WHERE r.status = 'maintenance')
		FROM rooms r
		JOIN properties p ON p.id = r.property_id
		WHERE p.landlord_id = $1 AND p.deleted_at IS NULL
	`

	var stats entity.RoomStats
	err := r.db.QueryRow(ctx, query, landlordID).Scan(
		&stats.Total,
		&stats.Available,
		&stats.Occupied,
		&stats.Maintenance,
	)
	if err != nil {
		r.log.Error("Failed to load room stats",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return nil, fmt.Errorf("room stats for landlord %s: %w", landlordID.String(), err)
	}

	return &stats, nil
}
