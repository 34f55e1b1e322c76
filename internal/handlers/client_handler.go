package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("is_active = ?", true)
	if c.Query("include_archived") == "true" {
		q = h.db.Session(&gorm.Session{})
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "First name and phone are required.")
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE (partial)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE (archive)
// ======================================================

// Clients are archived rather than removed so their appointment history
// stays intact.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Client id must be numeric.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	client.IsActive = false
	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_archive_client", "Could not archive client.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client archived."})
}
