package response

// DashboardStats is computed from independent sub-queries. A sub-query that
// fails or times out leaves its section zero and adds a warning.
type DashboardStats struct {
	Properties     PropertyCounts    `json:"properties"`
	Rooms          RoomCounts        `json:"rooms"`
	Bookings       BookingCounts     `json:"bookings"`
	Revenue        float64           `json:"revenue"`
	Refunded       float64           `json:"refunded"`
	OccupancyRate  float64           `json:"occupancy_rate"`
	RecentBookings []BookingResponse `json:"recent_bookings"`
	Verification   string            `json:"verification_status"`
	Warnings       []string          `json:"warnings,omitempty"`
}

type PropertyCounts struct {
	Total int64 `json:"total"`
}

type RoomCounts struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
}

type BookingCounts struct {
	Total            int64 `json:"total"`
	Pending          int64 `json:"pending"`
	Confirmed        int64 `json:"confirmed"`
	Completed        int64 `json:"completed"`
	PartialCompleted int64 `json:"partial_completed"`
	Cancelled        int64 `json:"cancelled"`
}
