package request

type CreateRoomRequest struct {
	PropertyID   string  `json:"property_id" validate:"required,uuid"`
	RoomNumber   string  `json:"room_number" validate:"required,max=30"`
	RoomType     string  `json:"room_type" validate:"required,oneof=single double quad bedSpacer"`
	PricingModel string  `json:"pricing_model" validate:"omitempty,oneof=full_room per_bed"`
	Capacity     int     `json:"capacity" validate:"omitempty,min=0"`
	MonthlyRate  float64 `json:"monthly_rate" validate:"gte=0"`
	DailyRate    float64 `json:"daily_rate" validate:"gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

type UpdateRoomRequest struct {
	RoomNumber   *string  `json:"room_number,omitempty" validate:"omitempty,max=30"`
	RoomType     *string  `json:"room_type,omitempty" validate:"omitempty,oneof=single double quad bedSpacer"`
	PricingModel *string  `json:"pricing_model,omitempty" validate:"omitempty,oneof=full_room per_bed"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=0"`
	MonthlyRate  *float64 `json:"monthly_rate,omitempty" validate:"omitempty,gte=0"`
	DailyRate    *float64 `json:"daily_rate,omitempty" validate:"omitempty,gte=0"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance"`
}
