package dto

type CreateBookingRequest struct {
	CustomerID      string `json:"customer_id" binding:"required,uuid"`
	ServiceID       string `json:"service_id" binding:"omitempty,uuid"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       *int   `json:"party_size" binding:"omitempty,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type ResolveSupportRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	BusinessID string `json:"business_id" binding:"required,uuid"`
}
