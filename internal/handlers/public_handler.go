package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clippercut/clippercut-api/internal/dto"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/httpresp"
	ucAppointment "github.com/clippercut/clippercut-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	bookingUC *ucAppointment.PublicBooking
}

func NewPublicHandler(bookingUC *ucAppointment.PublicBooking) *PublicHandler {
	return &PublicHandler{
		bookingUC: bookingUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:MM
}

////////////////////////////////////////////////////////
// CREATE BOOKING (NO AUTH)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email, phone, date and time are required; email must be valid.")
		return
	}

	res, err := h.bookingUC.Execute(c.Request.Context(), ucAppointment.PublicBookingInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.Created(c, dto.PublicBookingResponse{
		Appointment: res.Appointment,
		ServiceName: res.ServiceName,
		BarberName:  res.BarberName,
		ClientName:  res.ClientName,
		Reference:   res.Reference,
		Message:     "Appointment booked successfully.",
	})
}
