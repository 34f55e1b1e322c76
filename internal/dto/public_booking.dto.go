package dto

import "github.com/clippercut/clippercut-api/internal/models"

// PublicBookingResponse is the confirmation payload for anonymous bookers:
// the created appointment plus denormalized display strings the widget can
// show without further requests.
type PublicBookingResponse struct {
	Appointment models.Appointment `json:"appointment"`
	ServiceName string             `json:"service_name"`
	BarberName  string             `json:"barber_name"`
	ClientName  string             `json:"client_name"`
	Reference   string             `json:"reference"`
	Message     string             `json:"message"`
}
