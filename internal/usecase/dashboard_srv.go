package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/response"
	"dorm-rental/pkg/cache"
	"dorm-rental/pkg/metrics"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentBookingsLimit = 5

type DashboardService interface {
	Stats(ctx context.Context, landlordID uuid.UUID) (*response.DashboardStats, error)
}

type dashboardService struct {
	repo         *repository.Repository
	verification VerificationService
	cache        cache.Cache
	timeout      time.Duration
	ttl          time.Duration
	log          *zap.Logger
}

func NewDashboardService(
	repo *repository.Repository,
	verification VerificationService,
	cache cache.Cache,
	config utils.DashboardConfig,
	ttl time.Duration,
	log *zap.Logger,
) DashboardService {
	return &dashboardService{
		repo:         repo,
		verification: verification,
		cache:        cache,
		timeout:      config.Timeout,
		ttl:          ttl,
		log:          log.With(zap.String("service", "dashboard")),
	}
}

// Stats runs every section concurrently under the configured timeout.
// A section that fails is left zero and reported in Warnings; only a
// complete result is cached, keyed by the dashboard version read before
// computing so a concurrent invalidation orphans it.
func (s *dashboardService) Stats(ctx context.Context, landlordID uuid.UUID) (*response.DashboardStats, error) {
	var version int64
	cacheable := true
	if _, err := s.cache.Get(ctx, cache.DashboardVersionKey(landlordID), &version); err != nil {
		s.log.Warn("Dashboard cache version lookup failed", zap.Error(err))
		cacheable = false
	}
	key := cache.DashboardKey(landlordID, version)

	if cacheable {
		var cached response.DashboardStats
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn("Dashboard cache lookup failed", zap.Error(err))
		}
		metrics.ObserveDashboardCache(hit)
		if hit {
			return &cached, nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	stats := &response.DashboardStats{RecentBookings: []response.BookingResponse{}}

	var (
		mu       sync.Mutex
		warnings []string
	)
	section := func(name string, fn func() error) func() error {
		return func() error {
			if err := fn(); err != nil {
				s.log.Warn("Dashboard section failed",
					zap.String("section", name),
					zap.String("landlord_id", landlordID.String()),
					zap.Error(err))
				mu.Lock()
				warnings = append(warnings, sectionWarning(name, err))
				mu.Unlock()
			}
			return nil
		}
	}

	var (
		propertyTotal int64
		rooms         *entity.RoomStats
		bookings      *entity.BookingStats
		recent        []*entity.BookingDetail
	)

	g := new(errgroup.Group)
	g.Go(section("properties", func() (err error) {
		propertyTotal, err = s.repo.Property.CountByLandlord(ctx, landlordID)
		return err
	}))
	g.Go(section("rooms", func() (err error) {
		rooms, err = s.repo.Room.StatsByLandlord(ctx, landlordID)
		return err
	}))
	g.Go(section("bookings", func() (err error) {
		bookings, err = s.repo.Booking.StatsByLandlord(ctx, landlordID)
		return err
	}))
	g.Go(section("recent_bookings", func() (err error) {
		recent, err = s.repo.Booking.List(ctx, entity.BookingFilter{LandlordID: &landlordID}, recentBookingsLimit, 0)
		return err
	}))
	g.Go(section("verification", func() error {
		status, err := s.verification.Status(ctx, landlordID)
		if err != nil {
			return err
		}
		stats.Verification = string(status)
		return nil
	}))
	// sections never return an error
	_ = g.Wait()

	stats.Properties.Total = propertyTotal
	if rooms != nil {
		stats.Rooms = response.RoomCounts{
			Total:       rooms.Total,
			Available:   rooms.Available,
			Occupied:    rooms.Occupied,
			Maintenance: rooms.Maintenance,
		}
		stats.OccupancyRate = occupancyRate(rooms.Occupied, rooms.Total)
	}
	if bookings != nil {
		stats.Bookings = response.BookingCounts{
			Total:            bookings.Total,
			Pending:          bookings.Pending,
			Confirmed:        bookings.Confirmed,
			Completed:        bookings.Completed,
			PartialCompleted: bookings.PartialCompleted,
			Cancelled:        bookings.Cancelled,
		}
		stats.Revenue = bookings.Revenue
		stats.Refunded = bookings.Refunded
	}
	if recent != nil {
		stats.RecentBookings = response.BookingsToResponse(recent)
	}
	slices.Sort(warnings)
	stats.Warnings = warnings

	if cacheable && len(warnings) == 0 {
		if err := s.cache.Set(ctx, key, stats, s.ttl); err != nil {
			s.log.Warn("Failed to cache dashboard stats", zap.Error(err))
		}
	}

	return stats, nil
}

func sectionWarning(name string, err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("%s: timed out", name)
	}
	return fmt.Sprintf("%s: unavailable", name)
}

// occupancyRate is a percentage rounded to one decimal.
func occupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(occupied)/float64(total)*1000) / 10
}
