package usecase

import (
	"context"
	"testing"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/dto/request"
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom_PropertyTypeRules(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewRoomService(repo, testLogger())
	ctx := context.Background()
	landlordID := uuid.New()

	dorm := fakes.properties.add(landlordID, domain.PropertyTypeDormitory, entity.PropertyStatusDraft)
	bedSpacer := fakes.properties.add(landlordID, domain.PropertyTypeBedSpacer, entity.PropertyStatusDraft)
	apartment := fakes.properties.add(landlordID, domain.PropertyTypeApartment, entity.PropertyStatusDraft)

	tests := []struct {
		name         string
		property     *entity.Property
		roomType     string
		pricing      string
		capacity     int
		wantErr      string
		wantPricing  domain.PricingModel
		wantCapacity int
	}{
		{name: "dormitory single", property: dorm, roomType: "single", wantPricing: domain.PricingFullRoom, wantCapacity: 1},
		{name: "dormitory rejects double", property: dorm, roomType: "double", wantErr: "invalid room type double for dormitory property"},
		{name: "bed spacer forces per bed", property: bedSpacer, roomType: "quad", pricing: "full_room", wantPricing: domain.PricingPerBed, wantCapacity: 4},
		{name: "apartment rejects bedSpacer", property: apartment, roomType: "bedSpacer", wantErr: "invalid room type"},
		{name: "capacity override clamped", property: apartment, roomType: "double", capacity: 25, wantPricing: domain.PricingFullRoom, wantCapacity: 10},
		{name: "bedSpacer without capacity", property: dorm, roomType: "bedSpacer", wantPricing: domain.PricingFullRoom, wantCapacity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CreateRoom(ctx, landlordID, &request.CreateRoomRequest{
				PropertyID:   tt.property.ID.String(),
				RoomNumber:   "A1",
				RoomType:     tt.roomType,
				PricingModel: tt.pricing,
				Capacity:     tt.capacity,
				MonthlyRate:  6000,
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPricing, resp.PricingModel)
			assert.Equal(t, tt.wantCapacity, resp.Capacity)
			assert.Equal(t, domain.RoomStatusAvailable, resp.Status)
		})
	}
}

func TestUpdateRoom_TypeChangeRederivesCapacity(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewRoomService(repo, testLogger())
	landlordID := uuid.New()
	p := fakes.properties.add(landlordID, domain.PropertyTypeApartment, entity.PropertyStatusDraft)
	room := fakes.rooms.add(p.ID, 0, 5000)

	resp, err := svc.UpdateRoom(context.Background(), landlordID, room.ID.String(), &request.UpdateRoomRequest{
		RoomType: ptr("quad"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoomTypeQuad, resp.RoomType)
	assert.Equal(t, 4, resp.Capacity)
	assert.InDelta(t, 5000, resp.MonthlyRate, 0.001)
}

func TestUpdateRoomStatus(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewRoomService(repo, testLogger())
	landlordID := uuid.New()
	p := fakes.properties.add(landlordID, domain.PropertyTypeDormitory, entity.PropertyStatusDraft)
	room := fakes.rooms.add(p.ID, 0, 5000)

	resp, err := svc.UpdateRoomStatus(context.Background(), landlordID, room.ID.String(), &request.UpdateRoomStatusRequest{Status: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusMaintenance, resp.Status)
	assert.Equal(t, domain.RoomStatusMaintenance, fakes.rooms.items[room.ID].Status)

	_, err = svc.UpdateRoomStatus(context.Background(), uuid.New(), room.ID.String(), &request.UpdateRoomStatusRequest{Status: "available"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestDeleteRoom_ActiveBookings(t *testing.T) {
	repo, fakes := newFakeRepos()
	svc := NewRoomService(repo, testLogger())
	landlordID := uuid.New()
	p := fakes.properties.add(landlordID, domain.PropertyTypeDormitory, entity.PropertyStatusDraft)
	room := fakes.rooms.add(p.ID, 0, 5000)
	b := fakes.bookings.add(p, room, domain.BookingStatusPending, 100)

	err := svc.DeleteRoom(context.Background(), landlordID, room.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete room")

	fakes.bookings.items[b.ID].Status = domain.BookingStatusCancelled
	require.NoError(t, svc.DeleteRoom(context.Background(), landlordID, room.ID.String()))
	assert.Empty(t, fakes.rooms.items)
}
