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
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, landlordID uuid.UUID, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, landlordID uuid.UUID, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	UpdateRoomStatus(ctx context.Context, landlordID uuid.UUID, roomID string, req *request.UpdateRoomStatusRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, landlordID uuid.UUID, roomID string) error
	ListRooms(ctx context.Context, landlordID uuid.UUID, propertyID string) ([]response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

// ownedRoom loads a room together with its property and checks ownership.
func (s *roomService) ownedRoom(ctx context.Context, landlordID uuid.UUID, roomID string) (*entity.Room, *entity.Property, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, nil, err
	}
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, nil, fmt.Errorf("room %s not found", roomID)
	}

	property, err := s.repo.Property.FindByID(ctx, room.PropertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("get room property: %w", err)
	}
	if err := ownedProperty(property, landlordID, room.PropertyID.String()); err != nil {
		return nil, nil, err
	}
	return room, property, nil
}

func (s *roomService) CreateRoom(ctx context.Context, landlordID uuid.UUID, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create room validation failed", zap.Error(err))
		return nil, err
	}

	propertyID, err := parseID("property", req.PropertyID)
	if err != nil {
		return nil, err
	}
	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	if err := ownedProperty(property, landlordID, req.PropertyID); err != nil {
		return nil, err
	}

	spec, err := domain.ResolveRoomSpec(property.PropertyType, domain.RoomSpec{
		RoomType:     domain.RoomType(req.RoomType),
		PricingModel: domain.PricingModel(req.PricingModel),
		Capacity:     req.Capacity,
	})
	if err != nil {
		return nil, err
	}

	status := domain.RoomStatusAvailable
	if req.Status != "" {
		if status, err = domain.ParseRoomStatus(req.Status); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	room := &entity.Room{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:   propertyID,
		RoomNumber:   strings.TrimSpace(req.RoomNumber),
		RoomType:     spec.RoomType,
		PricingModel: spec.PricingModel,
		Capacity:     spec.Capacity,
		MonthlyRate:  req.MonthlyRate,
		DailyRate:    req.DailyRate,
		Status:       status,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("property_id", req.PropertyID),
		zap.String("room_type", string(room.RoomType)),
		zap.Int("capacity", room.Capacity))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, landlordID uuid.UUID, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	room, property, err := s.ownedRoom(ctx, landlordID, roomID)
	if err != nil {
		return nil, err
	}

	want := domain.RoomSpec{
		RoomType:     room.RoomType,
		PricingModel: room.PricingModel,
		Capacity:     room.Capacity,
	}
	if req.RoomType != nil && domain.RoomType(*req.RoomType) != room.RoomType {
		want.RoomType = domain.RoomType(*req.RoomType)
		// a new type re-derives capacity unless one is given
		want.Capacity = 0
	}
	if req.PricingModel != nil {
		want.PricingModel = domain.PricingModel(*req.PricingModel)
	}
	if req.Capacity != nil {
		want.Capacity = *req.Capacity
	}

	spec, err := domain.ResolveRoomSpec(property.PropertyType, want)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.MonthlyRate != nil {
		room.MonthlyRate = *req.MonthlyRate
	}
	if req.DailyRate != nil {
		room.DailyRate = *req.DailyRate
	}
	room.RoomType = spec.RoomType
	room.PricingModel = spec.PricingModel
	room.Capacity = spec.Capacity
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoomStatus(ctx context.Context, landlordID uuid.UUID, roomID string, req *request.UpdateRoomStatusRequest) (*response.RoomResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	status, err := domain.ParseRoomStatus(req.Status)
	if err != nil {
		return nil, err
	}

	room, _, err := s.ownedRoom(ctx, landlordID, roomID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Room.UpdateStatus(ctx, room.ID, status); err != nil {
		return nil, fmt.Errorf("update room status: %w", err)
	}

	s.log.Info("Room status updated",
		zap.String("room_id", roomID),
		zap.String("from", string(room.Status)),
		zap.String("to", string(status)))

	room.Status = status
	room.UpdatedAt = time.Now()
	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, landlordID uuid.UUID, roomID string) error {
	room, _, err := s.ownedRoom(ctx, landlordID, roomID)
	if err != nil {
		return err
	}

	active, err := s.repo.Booking.CountActiveByRoom(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("cannot delete room with %d active bookings", active)
	}

	if err := s.repo.Room.Delete(ctx, room.ID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func (s *roomService) ListRooms(ctx context.Context, landlordID uuid.UUID, propertyID string) ([]response.RoomResponse, error) {
	id, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}
	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if err := ownedProperty(property, landlordID, propertyID); err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByPropertyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return response.RoomsToResponse(rooms), nil
}
