package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	c *Client
}

func (s *DashboardService) Stats(ctx context.Context) Result[DashboardStats] {
	return get[DashboardStats](ctx, s.c, "/landlord/dashboard/stats", nil)
}

// Overview is the landlord home screen. Sections that failed are nil and
// listed in Failures with their error message.
type Overview struct {
	Stats          *DashboardStats
	RecentBookings []Booking
	Properties     []Property
	Failures       map[string]string
}

// Complete reports whether every section loaded.
func (o Overview) Complete() bool {
	return len(o.Failures) == 0
}

// Overview fetches stats, recent bookings and properties concurrently under
// the client's overview timeout. One failing section never fails the
// others; requests still running at the deadline are cancelled and
// reported as timed out.
func (s *DashboardService) Overview(ctx context.Context) Overview {
	ctx, cancel := context.WithTimeout(ctx, s.c.overviewTimeout)
	defer cancel()

	var (
		stats      Result[DashboardStats]
		bookings   Result[Page[Booking]]
		properties Result[Page[Property]]
	)

	var g errgroup.Group
	g.Go(func() error {
		stats = s.Stats(ctx)
		return nil
	})
	g.Go(func() error {
		bookings = s.c.Bookings.List(ctx, BookingFilter{PageQuery: PageQuery{Page: 1, PerPage: 5}})
		return nil
	})
	g.Go(func() error {
		properties = s.c.Properties.List(ctx, PageQuery{Page: 1, PerPage: 10})
		return nil
	})
	_ = g.Wait()

	out := Overview{Failures: map[string]string{}}
	if stats.Success {
		out.Stats = &stats.Data
	} else {
		out.Failures["stats"] = stats.Error
	}
	if bookings.Success {
		out.RecentBookings = bookings.Data.Data
	} else {
		out.Failures["recent_bookings"] = bookings.Error
	}
	if properties.Success {
		out.Properties = properties.Data.Data
	} else {
		out.Failures["properties"] = properties.Error
	}
	return out
}
