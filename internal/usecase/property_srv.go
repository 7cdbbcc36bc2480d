package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
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

type PropertyService interface {
	// Landlord
	CreateProperty(ctx context.Context, landlordID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error)
	UpdateProperty(ctx context.Context, landlordID uuid.UUID, propertyID string, req *request.PropertyRequest) (*response.PropertyResponse, error)
	DeleteProperty(ctx context.Context, landlordID uuid.UUID, propertyID string, req *request.DeletePropertyRequest) error
	GetLandlordProperty(ctx context.Context, landlordID uuid.UUID, propertyID string) (*response.PropertyDetailResponse, error)
	ListLandlordProperties(ctx context.Context, landlordID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error)

	// Public
	ListPublicProperties(ctx context.Context, req *request.PropertyListRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	GetPublicProperty(ctx context.Context, propertyID string) (*response.PropertyDetailResponse, error)
}

type propertyService struct {
	repo         *repository.Repository
	verification VerificationService
	store        storage.FileStore
	log          *zap.Logger
}

func NewPropertyService(
	repo *repository.Repository,
	verification VerificationService,
	store storage.FileStore,
	log *zap.Logger,
) PropertyService {
	return &propertyService{
		repo:         repo,
		verification: verification,
		store:        store,
		log:          log.With(zap.String("service", "property")),
	}
}

func draftFromRequest(req *request.PropertyRequest, credentials int) domain.PropertyDraft {
	return domain.PropertyDraft{
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		PropertyType: strings.TrimSpace(req.PropertyType),
		Address:      strings.TrimSpace(req.Address),
		City:         strings.TrimSpace(req.City),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Amenities:    req.Amenities,
		Rules:        req.Rules,
		IsEligible:   req.IsEligible,
		Credentials:  credentials,
	}
}

// checkPublish requires an approved verification before a property leaves draft.
func (s *propertyService) checkPublish(ctx context.Context, landlordID uuid.UUID, isDraft bool) error {
	if isDraft {
		return nil
	}
	status, err := s.verification.Status(ctx, landlordID)
	if err != nil {
		return err
	}
	if status != domain.VerificationApproved {
		return fmt.Errorf("cannot publish property: landlord verification is %s, approval required", status)
	}
	return nil
}

// saveFiles stores every upload or none of them.
func (s *propertyService) saveFiles(folder string, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		p, err := s.store.Save(folder, fh)
		if err != nil {
			s.store.Remove(paths...)
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func statusFor(isDraft bool) entity.PropertyStatus {
	if isDraft {
		return entity.PropertyStatusDraft
	}
	return entity.PropertyStatusPublished
}

func (s *propertyService) CreateProperty(ctx context.Context, landlordID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	draft := draftFromRequest(req, len(req.Credentials))
	if errs := draft.Validate(req.IsDraft); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}
	if err := s.checkPublish(ctx, landlordID, req.IsDraft); err != nil {
		return nil, err
	}

	images, err := s.saveFiles("properties/"+landlordID.String(), req.Images)
	if err != nil {
		return nil, fmt.Errorf("save images: %w", err)
	}
	credentials, err := s.saveFiles("credentials/"+landlordID.String(), req.Credentials)
	if err != nil {
		s.store.Remove(images...)
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	now := time.Now()
	property := &entity.Property{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LandlordID:   landlordID,
		Name:         draft.Name,
		Description:  draft.Description,
		PropertyType: domain.PropertyType(draft.PropertyType),
		Address:      draft.Address,
		City:         draft.City,
		Latitude:     draft.Latitude,
		Longitude:    draft.Longitude,
		Amenities:    draft.Amenities,
		Rules:        draft.Rules,
		Images:       images,
		Credentials:  credentials,
		IsEligible:   draft.IsEligible,
		Status:       statusFor(req.IsDraft),
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.store.Remove(append(images, credentials...)...)
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("landlord_id", landlordID.String()),
		zap.String("status", string(property.Status)))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, landlordID uuid.UUID, propertyID string, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	id, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	if err := ownedProperty(property, landlordID, propertyID); err != nil {
		return nil, err
	}

	draft := draftFromRequest(req, len(property.Credentials)+len(req.Credentials))
	if errs := draft.Validate(req.IsDraft); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}
	if err := s.checkPublish(ctx, landlordID, req.IsDraft); err != nil {
		return nil, err
	}
	if err := s.checkRoomsFit(ctx, property, domain.PropertyType(draft.PropertyType)); err != nil {
		return nil, err
	}

	newImages, err := s.saveFiles("properties/"+landlordID.String(), req.Images)
	if err != nil {
		return nil, fmt.Errorf("save images: %w", err)
	}
	newCredentials, err := s.saveFiles("credentials/"+landlordID.String(), req.Credentials)
	if err != nil {
		s.store.Remove(newImages...)
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	var kept, removed []string
	for _, img := range property.Images {
		if slices.Contains(req.RemoveImages, img) {
			removed = append(removed, img)
			continue
		}
		kept = append(kept, img)
	}

	property.Name = draft.Name
	property.Description = draft.Description
	property.PropertyType = domain.PropertyType(draft.PropertyType)
	property.Address = draft.Address
	property.City = draft.City
	property.Latitude = draft.Latitude
	property.Longitude = draft.Longitude
	property.Amenities = draft.Amenities
	property.Rules = draft.Rules
	property.Images = append(kept, newImages...)
	property.Credentials = append(property.Credentials, newCredentials...)
	property.IsEligible = draft.IsEligible
	property.Status = statusFor(req.IsDraft)
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.store.Remove(append(newImages, newCredentials...)...)
		return nil, fmt.Errorf("update property: %w", err)
	}
	s.store.Remove(removed...)

	s.log.Info("Property updated",
		zap.String("property_id", propertyID),
		zap.String("status", string(property.Status)))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

// checkRoomsFit rejects a property type change that an existing room would
// violate.
func (s *propertyService) checkRoomsFit(ctx context.Context, property *entity.Property, newType domain.PropertyType) error {
	if newType == "" || newType == property.PropertyType {
		return nil
	}

	rooms, err := s.repo.Room.FindByPropertyID(ctx, property.ID)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	for _, room := range rooms {
		spec, err := domain.ResolveRoomSpec(newType, domain.RoomSpec{
			RoomType:     room.RoomType,
			PricingModel: room.PricingModel,
			Capacity:     room.Capacity,
		})
		if err != nil || spec.PricingModel != room.PricingModel {
			return fmt.Errorf("cannot change property type to %s: room %s is a %s room priced %s",
				newType, room.RoomNumber, room.RoomType, room.PricingModel)
		}
	}
	return nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, landlordID uuid.UUID, propertyID string, req *request.DeletePropertyRequest) error {
	if err := utils.Validate(req); err != nil {
		return err
	}
	id, err := parseID("property", propertyID)
	if err != nil {
		return err
	}

	user, err := s.repo.User.FindByID(ctx, landlordID)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return utils.NewValidationError("password", "is incorrect")
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if err := ownedProperty(property, landlordID, propertyID); err != nil {
		return err
	}

	active, err := s.repo.Booking.CountActiveByProperty(ctx, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("cannot delete property with %d active bookings", active)
	}

	if err := s.repo.Property.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	s.store.Remove(append(property.Images, property.Credentials...)...)

	s.log.Info("Property deleted",
		zap.String("property_id", propertyID),
		zap.String("landlord_id", landlordID.String()))
	return nil
}

func (s *propertyService) GetLandlordProperty(ctx context.Context, landlordID uuid.UUID, propertyID string) (*response.PropertyDetailResponse, error) {
	id, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if err := ownedProperty(property, landlordID, propertyID); err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindByPropertyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property rooms: %w", err)
	}

	resp := response.PropertyToResponse(property)
	resp.RoomCount = len(rooms)
	for _, room := range rooms {
		if room.Status == domain.RoomStatusAvailable {
			resp.AvailableRooms++
		}
		if room.MonthlyRate > 0 && (resp.StartingRate == 0 || room.MonthlyRate < resp.StartingRate) {
			resp.StartingRate = room.MonthlyRate
		}
	}

	return &response.PropertyDetailResponse{
		PropertyResponse: resp,
		Rooms:            response.RoomsToResponse(rooms),
		AllowedRoomTypes: domain.AllowedRoomTypes(property.PropertyType),
	}, nil
}

func (s *propertyService) ListLandlordProperties(ctx context.Context, landlordID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	normalizePage(req)

	properties, err := s.repo.Property.ListByLandlord(ctx, landlordID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	total, err := s.repo.Property.CountByLandlord(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}

	data := make([]response.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		data = append(data, response.PropertySummaryToResponse(p))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *propertyService) ListPublicProperties(ctx context.Context, req *request.PropertyListRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	normalizePage(&req.PaginatedRequest)
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	filter := entity.PropertyFilter{
		City:         strings.TrimSpace(req.City),
		PropertyType: domain.PropertyType(req.PropertyType),
		Search:       strings.TrimSpace(req.Search),
	}

	properties, err := s.repo.Property.ListPublished(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list public properties: %w", err)
	}
	total, err := s.repo.Property.CountPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count public properties: %w", err)
	}

	data := make([]response.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		data = append(data, response.PublicPropertyResponse(p))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *propertyService) GetPublicProperty(ctx context.Context, propertyID string) (*response.PropertyDetailResponse, error) {
	id, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.Property.FindPublishedSummary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get public property: %w", err)
	}
	if summary == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	rooms, err := s.repo.Room.FindByPropertyID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property rooms: %w", err)
	}

	return &response.PropertyDetailResponse{
		PropertyResponse: response.PublicPropertyResponse(summary),
		Rooms:            response.RoomsToResponse(rooms),
		AllowedRoomTypes: domain.AllowedRoomTypes(summary.PropertyType),
	}, nil
}
