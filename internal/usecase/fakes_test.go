package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errFakeDB = errors.New("connection refused")

type fakeRepos struct {
	users         *fakeUserRepo
	properties    *fakePropertyRepo
	rooms         *fakeRoomRepo
	bookings      *fakeBookingRepo
	payments      *fakePaymentRepo
	verifications *fakeVerificationRepo
	reports       *fakeReportRepo
	reviews       *fakeReviewRepo
}

func newFakeRepos() (*repository.Repository, *fakeRepos) {
	f := &fakeRepos{
		users:         &fakeUserRepo{items: map[uuid.UUID]*entity.User{}},
		rooms:         &fakeRoomRepo{items: map[uuid.UUID]*entity.Room{}},
		payments:      &fakePaymentRepo{},
		verifications: &fakeVerificationRepo{},
		reports:       &fakeReportRepo{items: map[uuid.UUID]*entity.Report{}},
		reviews:       &fakeReviewRepo{},
	}
	f.properties = &fakePropertyRepo{items: map[uuid.UUID]*entity.Property{}}
	f.bookings = &fakeBookingRepo{
		items:      map[uuid.UUID]*entity.Booking{},
		properties: f.properties,
		rooms:      f.rooms,
		payments:   f.payments,
	}
	return &repository.Repository{
		User:         f.users,
		Property:     f.properties,
		Room:         f.rooms,
		Booking:      f.bookings,
		Payment:      f.payments,
		Verification: f.verifications,
		Report:       f.reports,
		Review:       f.reviews,
	}, f
}

func testLogger() *zap.Logger { return zap.NewNop() }

// ==================== USERS ====================

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) add(role entity.UserRole, password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	u := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         "User " + string(role),
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	r.items[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].PasswordHash = hash
	return nil
}

// ==================== PROPERTIES ====================

type fakePropertyRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]*entity.Property
	createErr error
	countErr  error
}

func (r *fakePropertyRepo) add(landlordID uuid.UUID, pt domain.PropertyType, status entity.PropertyStatus) *entity.Property {
	p := &entity.Property{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		LandlordID:   landlordID,
		Name:         "Sunrise Dorm",
		PropertyType: pt,
		City:         "Cebu",
		Status:       status,
	}
	r.items[p.ID] = p
	return p
}

func (r *fakePropertyRepo) Create(_ context.Context, p *entity.Property) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePropertyRepo) Update(_ context.Context, p *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakePropertyRepo) summaries(match func(*entity.Property) bool) []*entity.PropertySummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PropertySummary
	for _, p := range r.items {
		if match(p) {
			out = append(out, &entity.PropertySummary{Property: *p})
		}
	}
	return out
}

func (r *fakePropertyRepo) ListByLandlord(_ context.Context, landlordID uuid.UUID, _, _ int) ([]*entity.PropertySummary, error) {
	return r.summaries(func(p *entity.Property) bool { return p.LandlordID == landlordID }), nil
}

func (r *fakePropertyRepo) CountByLandlord(_ context.Context, landlordID uuid.UUID) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.summaries(func(p *entity.Property) bool { return p.LandlordID == landlordID }))), nil
}

func (r *fakePropertyRepo) ListPublished(_ context.Context, _ entity.PropertyFilter, _, _ int) ([]*entity.PropertySummary, error) {
	return r.summaries(func(p *entity.Property) bool { return p.Status == entity.PropertyStatusPublished }), nil
}

func (r *fakePropertyRepo) CountPublished(_ context.Context, _ entity.PropertyFilter) (int64, error) {
	return int64(len(r.summaries(func(p *entity.Property) bool { return p.Status == entity.PropertyStatusPublished }))), nil
}

func (r *fakePropertyRepo) FindPublishedSummary(_ context.Context, id uuid.UUID) (*entity.PropertySummary, error) {
	s := r.summaries(func(p *entity.Property) bool { return p.ID == id && p.Status == entity.PropertyStatusPublished })
	if len(s) == 0 {
		return nil, nil
	}
	return s[0], nil
}

// ==================== ROOMS ====================

type fakeRoomRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Room
}

func (r *fakeRoomRepo) add(propertyID uuid.UUID, daily, monthly float64) *entity.Room {
	room := &entity.Room{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		PropertyID:   propertyID,
		RoomNumber:   "101",
		RoomType:     domain.RoomTypeSingle,
		PricingModel: domain.PricingFullRoom,
		Capacity:     1,
		DailyRate:    daily,
		MonthlyRate:  monthly,
		Status:       domain.RoomStatusAvailable,
	}
	r.items[room.ID] = room
	return room
}

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room, ok := r.items[id]; ok {
		cp := *room
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRoomRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Room
	for _, room := range r.items {
		if room.PropertyID == propertyID {
			cp := *room
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.RoomStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[id].Status = status
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeRoomRepo) StatsByLandlord(context.Context, uuid.UUID) (*entity.RoomStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &entity.RoomStats{}
	for _, room := range r.items {
		stats.Total++
		switch room.Status {
		case domain.RoomStatusAvailable:
			stats.Available++
		case domain.RoomStatusOccupied:
			stats.Occupied++
		case domain.RoomStatusMaintenance:
			stats.Maintenance++
		}
	}
	return stats, nil
}

// ==================== BOOKINGS ====================

type fakeBookingRepo struct {
	mu         sync.Mutex
	items      map[uuid.UUID]*entity.Booking
	properties *fakePropertyRepo
	rooms      *fakeRoomRepo
	payments   *fakePaymentRepo

	// beforeWrite runs before a status write, to simulate a concurrent request.
	beforeWrite func(b *entity.Booking)
	statsErr    error
	statsDelay  time.Duration
	statsHook   func()
}

func (r *fakeBookingRepo) add(property *entity.Property, room *entity.Room, status domain.BookingStatus, amount float64) *entity.Booking {
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := &entity.Booking{
		BaseNoDelete:  entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		Reference:     "BK-TEST",
		GuestName:     "Juan Dela Cruz",
		PropertyID:    property.ID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		Amount:        amount,
		Status:        status,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	r.items[b.ID] = b
	return b
}

func (r *fakeBookingRepo) get(id uuid.UUID) *entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.items[id]
	return &cp
}

func (r *fakeBookingRepo) detail(b *entity.Booking) *entity.BookingDetail {
	d := &entity.BookingDetail{Booking: *b}
	if p, ok := r.properties.items[b.PropertyID]; ok {
		d.PropertyName = p.Name
		d.LandlordID = p.LandlordID
	}
	if room, ok := r.rooms.items[b.RoomID]; ok {
		d.RoomNumber = room.RoomNumber
	}
	return d
}

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.detail(b), nil
}

func (r *fakeBookingRepo) matching(filter entity.BookingFilter) []*entity.BookingDetail {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BookingDetail
	for _, b := range r.items {
		d := r.detail(b)
		if filter.LandlordID != nil && d.LandlordID != *filter.LandlordID {
			continue
		}
		if filter.TenantID != nil && (b.TenantID == nil || *b.TenantID != *filter.TenantID) {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	return out
}

func (r *fakeBookingRepo) List(_ context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingDetail, error) {
	all := r.matching(filter)
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *fakeBookingRepo) Count(_ context.Context, filter entity.BookingFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *fakeBookingRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to domain.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.items[id]
	if r.beforeWrite != nil {
		r.beforeWrite(b)
	}
	if b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *fakeBookingRepo) Cancel(ctx context.Context, id uuid.UUID, from domain.BookingStatus, reason string, refund float64, ledger *entity.Payment) (bool, error) {
	r.mu.Lock()
	b := r.items[id]
	if r.beforeWrite != nil {
		r.beforeWrite(b)
	}
	if b.Status != from {
		r.mu.Unlock()
		return false, nil
	}
	b.Status = domain.BookingStatusCancelled
	b.CancellationReason = &reason
	if refund > 0 {
		b.RefundAmount = &refund
		b.PaymentStatus = domain.PaymentStatusRefunded
	}
	r.mu.Unlock()

	if ledger != nil {
		return true, r.payments.Create(ctx, ledger)
	}
	return true, nil
}

func (r *fakeBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, ledger *entity.Payment) (bool, error) {
	r.mu.Lock()
	b := r.items[id]
	if b.Status == domain.BookingStatusCancelled {
		r.mu.Unlock()
		return false, nil
	}
	b.PaymentStatus = status
	r.mu.Unlock()

	if ledger != nil {
		return true, r.payments.Create(ctx, ledger)
	}
	return true, nil
}

func (r *fakeBookingRepo) CountOverlapping(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.items {
		if b.RoomID != roomID {
			continue
		}
		if b.Status != domain.BookingStatusPending && b.Status != domain.BookingStatusConfirmed {
			continue
		}
		if b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut) {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) countActive(match func(*entity.Booking) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.items {
		if match(b) && (b.Status == domain.BookingStatusPending || b.Status == domain.BookingStatusConfirmed) {
			n++
		}
	}
	return n
}

func (r *fakeBookingRepo) CountActiveByRoom(_ context.Context, roomID uuid.UUID) (int64, error) {
	return r.countActive(func(b *entity.Booking) bool { return b.RoomID == roomID }), nil
}

func (r *fakeBookingRepo) CountActiveByProperty(_ context.Context, propertyID uuid.UUID) (int64, error) {
	return r.countActive(func(b *entity.Booking) bool { return b.PropertyID == propertyID }), nil
}

func (r *fakeBookingRepo) StatsByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.BookingStats, error) {
	if r.statsDelay > 0 {
		select {
		case <-time.After(r.statsDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.statsHook != nil {
		r.statsHook()
	}
	if r.statsErr != nil {
		return nil, r.statsErr
	}
	stats := &entity.BookingStats{}
	for _, d := range r.matching(entity.BookingFilter{LandlordID: &landlordID}) {
		stats.Total++
		switch d.Status {
		case domain.BookingStatusPending:
			stats.Pending++
		case domain.BookingStatusConfirmed:
			stats.Confirmed++
		case domain.BookingStatusCompleted:
			stats.Completed++
		case domain.BookingStatusPartialCompleted:
			stats.PartialCompleted++
		case domain.BookingStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func tenantKey(b *entity.Booking) string {
	if b.TenantID != nil {
		return b.TenantID.String()
	}
	if email := strings.ToLower(b.GuestEmail); email != "" {
		return email
	}
	return b.ID.String()
}

func (r *fakeBookingRepo) tenants(landlordID uuid.UUID) []*entity.TenantSummary {
	groups := map[string]*entity.TenantSummary{}
	var order []string
	for _, d := range r.matching(entity.BookingFilter{LandlordID: &landlordID}) {
		key := tenantKey(&d.Booking)
		t, ok := groups[key]
		if !ok {
			t = &entity.TenantSummary{TenantID: d.TenantID, Name: d.GuestName, Email: strings.ToLower(d.GuestEmail)}
			groups[key] = t
			order = append(order, key)
		}
		t.BookingCount++
		if d.Status == domain.BookingStatusPending || d.Status == domain.BookingStatusConfirmed {
			t.ActiveBookings++
		}
		if d.PaymentStatus == domain.PaymentStatusPaid {
			t.TotalSpent += d.Amount
		}
		if d.CheckIn.After(t.LastCheckIn) {
			t.LastCheckIn = d.CheckIn
		}
	}

	var out []*entity.TenantSummary
	for _, key := range order {
		if groups[key].ActiveBookings > 0 {
			out = append(out, groups[key])
		}
	}
	return out
}

func (r *fakeBookingRepo) TenantsByLandlord(_ context.Context, landlordID uuid.UUID, limit, offset int) ([]*entity.TenantSummary, error) {
	all := r.tenants(landlordID)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r *fakeBookingRepo) CountTenantsByLandlord(_ context.Context, landlordID uuid.UUID) (int64, error) {
	return int64(len(r.tenants(landlordID))), nil
}

// ==================== PAYMENTS ====================

type fakePaymentRepo struct {
	mu    sync.Mutex
	items []*entity.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, p)
	return nil
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.items {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindByTenantID(context.Context, uuid.UUID, int, int) ([]*entity.PaymentDetail, error) {
	return nil, nil
}

func (r *fakePaymentRepo) CountByTenantID(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

// ==================== VERIFICATIONS ====================

type fakeVerificationRepo struct {
	mu    sync.Mutex
	items []*entity.VerificationRequest // newest first
}

func (r *fakeVerificationRepo) add(landlordID uuid.UUID, status domain.VerificationStatus) *entity.VerificationRequest {
	v := &entity.VerificationRequest{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		LandlordID: landlordID,
		IDType:     "passport",
		Status:     status,
	}
	r.items = append([]*entity.VerificationRequest{v}, r.items...)
	return v
}

func (r *fakeVerificationRepo) Create(_ context.Context, v *entity.VerificationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]*entity.VerificationRequest{v}, r.items...)
	return nil
}

func (r *fakeVerificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.VerificationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVerificationRepo) FindLatestByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.VerificationRequest, error) {
	all, _ := r.FindByLandlord(ctx, landlordID)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeVerificationRepo) FindByLandlord(_ context.Context, landlordID uuid.UUID) ([]*entity.VerificationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.VerificationRequest
	for _, v := range r.items {
		if v.LandlordID == landlordID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeVerificationRepo) List(context.Context, domain.VerificationStatus, int, int) ([]*entity.VerificationListItem, error) {
	return nil, nil
}

func (r *fakeVerificationRepo) Count(context.Context, domain.VerificationStatus) (int64, error) {
	return 0, nil
}

func (r *fakeVerificationRepo) Review(_ context.Context, id uuid.UUID, status domain.VerificationStatus, notes string, reviewer uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.ID == id && v.Status == domain.VerificationPending {
			v.Status = status
			v.Notes = notes
			v.ReviewedBy = &reviewer
			v.ReviewedAt = &at
			return true, nil
		}
	}
	return false, nil
}

// ==================== REPORTS ====================

type fakeReportRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Report
}

func (r *fakeReportRepo) Create(_ context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[report.ID] = report
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report, ok := r.items[id]; ok {
		cp := *report
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeReportRepo) List(_ context.Context, status domain.ReportStatus, _, _ int) ([]*entity.ReportListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReportListItem
	for _, report := range r.items {
		if status == "" || report.Status == status {
			out = append(out, &entity.ReportListItem{Report: *report})
		}
	}
	return out, nil
}

func (r *fakeReportRepo) Count(ctx context.Context, status domain.ReportStatus) (int64, error) {
	items, _ := r.List(ctx, status, 0, 0)
	return int64(len(items)), nil
}

func (r *fakeReportRepo) HasPendingReport(_ context.Context, reporterID, propertyID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.items {
		if report.ReporterID == reporterID && report.PropertyID == propertyID && report.Status == domain.ReportStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReportRepo) Resolve(_ context.Context, id uuid.UUID, status domain.ReportStatus, notes string, admin uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.items[id]
	if !ok || report.Status != domain.ReportStatusPending {
		return false, nil
	}
	report.Status = status
	report.AdminNotes = notes
	report.ResolvedBy = &admin
	report.ResolvedAt = &at
	return true, nil
}

// ==================== REVIEWS ====================

type fakeReviewRepo struct {
	mu    sync.Mutex
	items []*entity.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, review)
	return nil
}

func (r *fakeReviewRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID, _, _ int) ([]*entity.ReviewWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReviewWithUser
	for _, review := range r.items {
		if review.PropertyID == propertyID {
			out = append(out, &entity.ReviewWithUser{Review: *review, UserName: "Tenant"})
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	items, _ := r.FindByPropertyID(ctx, propertyID, 0, 0)
	return int64(len(items)), nil
}

func (r *fakeReviewRepo) FindByUserAndProperty(_ context.Context, userID, propertyID uuid.UUID) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, review := range r.items {
		if review.UserID == userID && review.PropertyID == propertyID {
			return review, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) GetPropertyReviewStats(ctx context.Context, propertyID uuid.UUID) (float64, int64, error) {
	items, _ := r.FindByPropertyID(ctx, propertyID, 0, 0)
	if len(items) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, review := range items {
		sum += review.Rating
	}
	return float64(sum) / float64(len(items)), int64(len(items)), nil
}

// ==================== CACHE / STORAGE ====================

type fakeCache struct {
	mu     sync.Mutex
	values map[string][]byte
	bumped []string
}

func newFakeCache() *fakeCache { return &fakeCache{values: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = raw
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	if raw, ok := c.values[key]; ok {
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
	}
	n++
	c.values[key] = []byte(strconv.FormatInt(n, 10))
	c.bumped = append(c.bumped, key)
	return n, nil
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	failOn  string
}

func (s *fakeStore) Save(folder string, fh *multipart.FileHeader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fh.Filename == s.failOn {
		return "", fmt.Errorf("disk full")
	}
	p := path.Join("/uploads", folder, fh.Filename)
	s.saved = append(s.saved, p)
	return p, nil
}

func (s *fakeStore) Remove(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, paths...)
}

func upload(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}
