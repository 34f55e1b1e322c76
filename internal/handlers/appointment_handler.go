package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/httpresp"
	"github.com/clippercut/clippercut-api/internal/middleware"
	ucAppointment "github.com/clippercut/clippercut-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC        *ucAppointment.CreateAppointment
	updateUC        *ucAppointment.UpdateAppointment
	deleteUC        *ucAppointment.DeleteAppointment
	getUC           *ucAppointment.GetAppointment
	listUC          *ucAppointment.ListAppointments
	lastCompletedUC *ucAppointment.LastCompletedPerClient
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	lastCompletedUC *ucAppointment.LastCompletedPerClient,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		getUC:           getUC,
		listUC:          listUC,
		lastCompletedUC: lastCompletedUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentRequest carries partial-patch fields. Zero values mean
// "leave unchanged"; notes is a pointer so an explicit empty string clears
// the field.
type UpdateAppointmentRequest struct {
	ClientID  uint    `json:"client_id"`
	ServiceID uint    `json:"service_id"`
	BarberID  uint    `json:"barber_id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes"`
}

func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Status:    c.Query("status"),
		Name:      c.Query("name"),
		Phone:     c.Query("phone"),
	})
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// GET ONE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LAST COMPLETED PER CLIENT
// ======================================================

func (h *AppointmentHandler) LastCompleted(c *gin.Context) {
	aps, err := h.lastCompletedUC.Execute(c.Request.Context())
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Notes:     req.Notes,
		UserID:    currentUserID(c),
	})
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), uint(id), ucAppointment.UpdateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Notes:     req.Notes,
		UserID:    currentUserID(c),
	})
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), currentUserID(c)); err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted."})
}
