package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "reservatenis/internal/handler/dto/response"
	"reservatenis/internal/pkg/config"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
	cfg           config.ReservationConfig
}

func NewReportHandler(reportUseCase usecase.ReportUseCase, cfg config.ReservationConfig) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		cfg:           cfg,
	}
}

// @Summary Occupancy report
// @Description Slots offered vs booked per court over a date range (admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date_from query string true "Range start (YYYY-MM-DD)"
// @Param date_to query string true "Range end (YYYY-MM-DD)"
// @Param slot_minutes query int false "Slot length in minutes"
// @Success 200 {object} resdto.OccupancyReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *gin.Context) {
	dateFrom, dateTo, err := h.parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slotMinutes := h.cfg.SlotMinutes
	if raw := c.Query("slot_minutes"); raw != "" {
		slotMinutes, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot_minutes value"})
			return
		}
	}

	report, err := h.reportUseCase.Occupancy(c.Request.Context(), dateFrom, dateTo, slotMinutes)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must not be after date_to"})
		case errors.Is(err, errs.ErrInvalidSlotMinutes):
			c.JSON(http.StatusBadRequest, gin.H{"error": "slot_minutes must be positive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancyReport(report))
}

// @Summary Revenue report
// @Description Confirmed reservation revenue per court over a date range (admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date_from query string true "Range start (YYYY-MM-DD)"
// @Param date_to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} resdto.RevenueReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	dateFrom, dateTo, err := h.parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportUseCase.Revenue(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must not be after date_to"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueReport(report))
}

func (h *ReportHandler) parseRange(c *gin.Context) (time.Time, time.Time, error) {
	loc, err := h.cfg.Location()
	if err != nil {
		loc = time.UTC
	}

	fromStr := c.Query("date_from")
	toStr := c.Query("date_to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, errors.New("date_from and date_to query parameters are required")
	}

	dateFrom, err := time.ParseInLocation("2006-01-02", fromStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errs.ErrInvalidDate
	}
	dateTo, err := time.ParseInLocation("2006-01-02", toStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errs.ErrInvalidDate
	}

	return dateFrom, dateTo, nil
}
