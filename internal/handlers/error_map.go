package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clippercut/clippercut-api/internal/httperr"
)

// mapAppointmentError translates use-case business codes into the HTTP
// error taxonomy: validation failures are 400, missing references 404,
// shop misconfiguration 500 with a diagnostic payload, anything else a
// generic 500.
func mapAppointmentError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "unknown_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case "invalid_status":
		httperr.BadRequest(c, be.Code, "Status must be one of pending, confirmed, completed, cancelled.")
	case "invalid_date":
		httperr.BadRequest(c, be.Code, "Date must be a valid calendar date.")
	case "invalid_time":
		httperr.BadRequest(c, be.Code, "Time must be a valid HH:MM value.")
	case "slot_conflict":
		httperr.BadRequest(c, be.Code, "The barber already has an appointment at that time.")
	case "client_not_found":
		httperr.NotFound(c, be.Code, "Client not found")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Service not found")
	case "barber_not_found":
		httperr.NotFound(c, be.Code, "Barber not found")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Appointment not found")
	case "default_service_missing":
		httperr.Internal(c, be.Code, "Default service not found, contact the administrator.")
	case "default_barber_missing":
		httperr.WriteDetails(
			c,
			http.StatusInternalServerError,
			be.Code,
			"Default barber not found, contact the administrator.",
			be.Meta,
		)
	default:
		httperr.Internal(c, "unknown_error", "Unexpected error.")
	}
}
