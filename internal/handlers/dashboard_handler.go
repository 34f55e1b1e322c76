package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercut/clippercut-api/internal/cache"
	domain "github.com/clippercut/clippercut-api/internal/domain/appointment"
	"github.com/clippercut/clippercut-api/internal/dto"
	"github.com/clippercut/clippercut-api/internal/httperr"
	"github.com/clippercut/clippercut-api/internal/models"
	"github.com/clippercut/clippercut-api/internal/timezone"
)

const summaryCacheKey = "dashboard:summary"
const summaryCacheTTL = 60 * time.Second

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardHandler(db *gorm.DB, cch *cache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cch}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	var summary dto.DashboardSummary
	if h.cache.GetJSON(ctx, summaryCacheKey, &summary) {
		c.JSON(http.StatusOK, summary)
		return
	}

	today := timezone.Today()

	if err := h.db.Model(&models.Appointment{}).
		Where("date = ?", today).
		Count(&summary.AppointmentsToday).Error; err != nil {
		httperr.Internal(c, "failed_to_build_summary", "Could not build dashboard summary.")
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusPending)).
		Count(&summary.PendingAppointments).Error; err != nil {
		httperr.Internal(c, "failed_to_build_summary", "Could not build dashboard summary.")
		return
	}

	if err := h.db.Model(&models.Client{}).
		Where("is_active = ?", true).
		Count(&summary.ActiveClients).Error; err != nil {
		httperr.Internal(c, "failed_to_build_summary", "Could not build dashboard summary.")
		return
	}

	monthStart := timezone.MonthStart()
	var revenue *float64
	if err := h.db.Model(&models.Sale{}).
		Where("date >= ?", monthStart).
		Select("SUM(total)").
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_build_summary", "Could not build dashboard summary.")
		return
	}
	if revenue != nil {
		summary.MonthRevenue = *revenue
	}

	h.cache.SetJSON(ctx, summaryCacheKey, summary, summaryCacheTTL)

	c.JSON(http.StatusOK, summary)
}
