package http

import "time"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShipmentRequest is the body of POST /api/v1/shipments.
type NewShipmentRequest struct {
	Content      string  `json:"content"`
	Weight       float64 `json:"weight"`
	Destination  int     `json:"destination"`
	ContactEmail string  `json:"contact_email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}

// ShipmentCreatedResponse carries the id of a freshly placed shipment.
type ShipmentCreatedResponse struct {
	ID string `json:"id"`
}

// UpdateShipmentRequest is the body of PATCH /api/v1/shipments/:id.
// All fields are optional individually; an empty body is rejected.
type UpdateShipmentRequest struct {
	Location          *int       `json:"location,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Description       string     `json:"description,omitempty"`
	VerificationCode  string     `json:"verification_code,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// SubmitReviewRequest is the body of POST /api/v1/shipments/review.
type SubmitReviewRequest struct {
	Token   string  `json:"token"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// NewPartnerRequest is the body of POST /api/v1/partners.
type NewPartnerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	MaxCapacity     int    `json:"max_capacity"`
	ServiceableZips []int  `json:"serviceable_zips"`
}

// PartnerCreatedResponse carries the id of a freshly registered partner.
type PartnerCreatedResponse struct {
	ID string `json:"id"`
}

// TimelineEvent is one entry of the shipment timeline in read responses.
type TimelineEvent struct {
	Location    int       `json:"location"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShipmentTag is a tag with its handling instruction in read responses.
type ShipmentTag struct {
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
}

// ShipmentResponse is the body of GET /api/v1/shipments/:id.
type ShipmentResponse struct {
	ID                string          `json:"id"`
	Content           string          `json:"content"`
	Weight            float64         `json:"weight"`
	Destination       int             `json:"destination"`
	Status            string          `json:"status"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	SellerID          string          `json:"seller_id"`
	PartnerID         *string         `json:"partner_id,omitempty"`
	PartnerName       *string         `json:"partner_name,omitempty"`
	ContactEmail      string          `json:"contact_email"`
	ContactPhone      *string         `json:"contact_phone,omitempty"`
	Timeline          []TimelineEvent `json:"timeline"`
	Tags              []ShipmentTag   `json:"tags"`
}
