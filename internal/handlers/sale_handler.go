package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/audit"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/httpresp"
	"github.com/clippercut/clippercut-api/internal/models"
	"github.com/clippercut/clippercut-api/internal/timezone"
)

type SaleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSaleHandler(db *gorm.DB, audit *audit.Dispatcher) *SaleHandler {
	return &SaleHandler{db: db, audit: audit}
}

// --------- Requests ---------

type SaleItemRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type CreateSaleRequest struct {
	ClientID      uint              `json:"client_id" binding:"required"`
	BarberID      uint              `json:"barber_id" binding:"required"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// ======================================================
// CREATE
// ======================================================

// Sales are recorded after the fact; the total is computed from the
// current service prices, never taken from the request.
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Client, barber and at least one item are required.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, req.BarberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found")
		return
	}

	items := make([]models.SaleItem, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		var service models.Service
		if err := h.db.First(&service, it.ServiceID).Error; err != nil {
			httperr.NotFound(c, "service_not_found", "Service not found")
			return
		}

		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}

		items = append(items, models.SaleItem{
			ServiceID: service.ID,
			Quantity:  qty,
			Price:     service.Price,
		})
		total += service.Price * float64(qty)
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	sale := models.Sale{
		ClientID:      req.ClientID,
		BarberID:      req.BarberID,
		Date:          timezone.Today(),
		Total:         total,
		PaymentMethod: method,
		Items:         items,
	}

	if err := h.db.Create(&sale).Error; err != nil {
		httperr.Internal(c, "failed_to_create_sale", "Could not record sale.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "sale_recorded",
		Entity:   "sale",
		EntityID: &sale.ID,
		Metadata: map[string]any{"total": total},
	})

	c.JSON(http.StatusCreated, sale)
}

// ======================================================
// LIST
// ======================================================

func (h *SaleHandler) List(c *gin.Context) {
	q := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Items").
		Preload("Items.Service")

	if startStr := c.Query("startDate"); startStr != "" {
		start, err := timezone.NormalizeDate(startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be a valid calendar date.")
			return
		}
		q = q.Where("date >= ?", start)
	}
	if endStr := c.Query("endDate"); endStr != "" {
		end, err := timezone.EndOfDayBound(endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be a valid calendar date.")
			return
		}
		q = q.Where("date < ?", end)
	}

	var sales []models.Sale
	if err := q.Order("date DESC, id DESC").Find(&sales).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Could not list sales.")
		return
	}

	httpresp.List(c, sales)
}
