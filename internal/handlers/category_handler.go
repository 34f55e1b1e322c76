package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Could not list categories.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	category := models.Category{Name: req.Name, IsActive: true}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create category.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	category.Name = req.Name
	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Could not update category.")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Category not found")
		return
	}

	category.IsActive = false
	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_archive_category", "Could not archive category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category archived."})
}
