package adaptor

import (
	"bytes"
	"context"
	"errors"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"

	"github.com/google/uuid"
)

var errNotStubbed = errors.New("not stubbed")

type stubBookingService struct {
	updateStatus  func(landlordID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	updatePayment func(landlordID uuid.UUID, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error)
	getBooking    func(userID uuid.UUID, role, bookingID string) (*response.BookingDetailResponse, error)
	list          func(landlordID uuid.UUID, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

func (s *stubBookingService) CreateLandlordBooking(context.Context, uuid.UUID, *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return nil, errNotStubbed
}

func (s *stubBookingService) ListLandlordBookings(_ context.Context, landlordID uuid.UUID, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if s.list == nil {
		return nil, errNotStubbed
	}
	return s.list(landlordID, req)
}

func (s *stubBookingService) UpdateStatus(_ context.Context, landlordID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	return s.updateStatus(landlordID, bookingID, req)
}

func (s *stubBookingService) UpdatePaymentStatus(_ context.Context, landlordID uuid.UUID, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error) {
	return s.updatePayment(landlordID, bookingID, req)
}

func (s *stubBookingService) CreateTenantBooking(context.Context, uuid.UUID, *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return nil, errNotStubbed
}

func (s *stubBookingService) GetBooking(_ context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingDetailResponse, error) {
	return s.getBooking(userID, role, bookingID)
}

type stubExportService struct {
	body []byte
	err  error
	req  *request.BookingListRequest
}

func (s *stubExportService) ExportBookings(_ context.Context, _ uuid.UUID, req *request.BookingListRequest) (*bytes.Buffer, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return bytes.NewBuffer(s.body), nil
}

type stubPropertyService struct {
	created    *request.PropertyRequest
	updated    *request.PropertyRequest
	updatedID  string
	deleteReq  *request.DeletePropertyRequest
	publicList *request.PropertyListRequest
	err        error
}

func (s *stubPropertyService) CreateProperty(_ context.Context, landlordID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	s.created = req
	if s.err != nil {
		return nil, s.err
	}
	return &response.PropertyResponse{ID: uuid.NewString(), LandlordID: landlordID.String(), Name: req.Name}, nil
}

func (s *stubPropertyService) UpdateProperty(_ context.Context, _ uuid.UUID, propertyID string, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	s.updated = req
	s.updatedID = propertyID
	if s.err != nil {
		return nil, s.err
	}
	return &response.PropertyResponse{ID: propertyID, Name: req.Name}, nil
}

func (s *stubPropertyService) DeleteProperty(_ context.Context, _ uuid.UUID, _ string, req *request.DeletePropertyRequest) error {
	s.deleteReq = req
	return s.err
}

func (s *stubPropertyService) GetLandlordProperty(context.Context, uuid.UUID, string) (*response.PropertyDetailResponse, error) {
	return nil, errNotStubbed
}

func (s *stubPropertyService) ListLandlordProperties(context.Context, uuid.UUID, *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	return nil, errNotStubbed
}

func (s *stubPropertyService) ListPublicProperties(_ context.Context, req *request.PropertyListRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	s.publicList = req
	return &response.PaginatedResponse[response.PropertyResponse]{Data: []response.PropertyResponse{}}, nil
}

func (s *stubPropertyService) GetPublicProperty(context.Context, string) (*response.PropertyDetailResponse, error) {
	return nil, errNotStubbed
}
