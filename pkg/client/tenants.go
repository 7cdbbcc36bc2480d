package client

import "context"

type TenantService struct {
	c *Client
}

// Tenants lists the landlord's guests with pending or confirmed bookings.
func (s *TenantService) Tenants(ctx context.Context, page PageQuery) Result[Page[Tenant]] {
	return get[Page[Tenant]](ctx, s.c, "/landlord/tenants", page.values())
}

func (s *TenantService) MyBookings(ctx context.Context, page PageQuery) Result[Page[Booking]] {
	return get[Page[Booking]](ctx, s.c, "/tenant/bookings", page.values())
}

func (s *TenantService) MyPayments(ctx context.Context, page PageQuery) Result[Page[Payment]] {
	return get[Page[Payment]](ctx, s.c, "/tenant/payments", page.values())
}
