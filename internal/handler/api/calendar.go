package api

import (
	"errors"
	"net/http"
	"strconv"

	"reservatenis/internal/handler/middleware"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultFeedDays = 30
	maxFeedDays     = 180
)

type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
}

func NewCalendarHandler(calendarUseCase usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
	}
}

// @Summary Court calendar feed
// @Description iCalendar feed of confirmed reservations on a court
// @Tags calendars
// @Produce text/calendar
// @Param id path string true "Court ID"
// @Param days query int false "Horizon in days (1-180, default 30)"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendars/courts/{id} [get]
func (h *CalendarHandler) CourtFeed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	days, err := h.parseDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := h.calendarUseCase.CourtFeed(c.Request.Context(), id, days)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// @Summary Personal calendar feed
// @Description iCalendar feed of the caller's confirmed reservations
// @Tags calendars
// @Produce text/calendar
// @Security BearerAuth
// @Param days query int false "Horizon in days (1-180, default 30)"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /calendars/me [get]
func (h *CalendarHandler) MyFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	days, err := h.parseDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := h.calendarUseCase.UserFeed(c.Request.Context(), userID, days)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *CalendarHandler) parseDays(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return defaultFeedDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > maxFeedDays {
		return 0, errors.New("days must be between 1 and 180")
	}
	return days, nil
}
