package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type UpdateBarberRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Session(&gorm.Session{})
	if activeStr == "true" {
		q = q.Where("is_active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("is_active = ?", false)
	}

	var barbers []models.Barber
	if err := q.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "First name is required.")
		return
	}

	barber := models.Barber{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FirstName != nil {
		barber.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		barber.LastName = *req.LastName
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Email != nil {
		barber.Email = *req.Email
	}
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	barber.IsActive = false
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_archive_barber", "Could not archive barber.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber archived."})
}
