package request

type CreateBookingRequest struct {
	ServiceID      string  `json:"service_id" validate:"required,uuid"`
	BookingDate    string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot       string  `json:"time_slot" validate:"omitempty,oneof=Morning Afternoon Evening"`
	ServiceAddress *string `json:"service_address,omitempty" validate:"omitempty,max=500"`
	Requirements   *string `json:"requirements,omitempty" validate:"omitempty,max=2000"`
}

type UpdateJobRequest struct {
	Status         string  `json:"status" validate:"required"`
	Requirements   *string `json:"requirements,omitempty" validate:"omitempty,max=2000"`
	ServiceAddress *string `json:"service_address,omitempty" validate:"omitempty,max=500"`
}

type UpdateTrackingRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Status    string  `json:"status" validate:"required,oneof=ON_THE_WAY ARRIVED"`
}

type PayRequest struct {
	Method  string  `json:"payment_method" validate:"required,oneof=UPI CARD WALLET"`
	Details *string `json:"payment_details,omitempty" validate:"omitempty,max=500"`
}
