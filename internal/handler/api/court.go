package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"reservatenis/internal/domain/availability"
	reqdto "reservatenis/internal/handler/dto/request"
	resdto "reservatenis/internal/handler/dto/response"
	"reservatenis/internal/pkg/config"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	courtUseCase        usecase.CourtUseCase
	availabilityUseCase usecase.AvailabilityUseCase
	cfg                 config.ReservationConfig
}

func NewCourtHandler(
	courtUseCase usecase.CourtUseCase,
	availabilityUseCase usecase.AvailabilityUseCase,
	cfg config.ReservationConfig,
) *CourtHandler {
	return &CourtHandler{
		courtUseCase:        courtUseCase,
		availabilityUseCase: availabilityUseCase,
		cfg:                 cfg,
	}
}

// @Summary Create court
// @Description Create a new court (admin only)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court request"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courts [post]
func (h *CourtHandler) CreateCourt(c *gin.Context) {
	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	courtEntity, err := h.courtUseCase.CreateCourt(c.Request.Context(), req.Name, req.Surface)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Court name already exists",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCourt(courtEntity))
}

// @Summary List courts
// @Description List courts; inactive courts are included only on request
// @Tags courts
// @Produce json
// @Param include_inactive query bool false "Include deactivated courts"
// @Success 200 {array} resdto.CourtResponse
// @Router /courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	courts, err := h.courtUseCase.ListCourts(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourts(courts))
}

// @Summary Get court
// @Description Get court by ID
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CourtHandler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	courtEntity, err := h.courtUseCase.GetCourt(c.Request.Context(), id)
	if err != nil {
		h.abortWithCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourt(courtEntity))
}

// @Summary Update court
// @Description Update court attributes (admin only)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.UpdateCourtRequest true "Court request"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courts/{id} [put]
func (h *CourtHandler) UpdateCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	var req reqdto.UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	courtEntity, err := h.courtUseCase.UpdateCourt(c.Request.Context(), id, usecase.UpdateCourtInput{
		Name:     req.Name,
		Surface:  req.Surface,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.abortWithCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourt(courtEntity))
}

// @Summary Deactivate court
// @Description Soft-delete a court; its history stays intact (admin only)
// @Tags courts
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [delete]
func (h *CourtHandler) DeactivateCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	if err := h.courtUseCase.DeactivateCourt(c.Request.Context(), id); err != nil {
		h.abortWithCourtError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Court availability
// @Description Free slots for a court on a date, in the facility timezone
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param slot_minutes query int false "Slot length in minutes"
// @Param from_hour query int false "Window start hour"
// @Param to_hour query int false "Window end hour"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/availability [get]
func (h *CourtHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	query, dateStr, err := h.parseAvailabilityQuery(c, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	slots, err := h.availabilityUseCase.GetFreeSlots(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrInvalidSlotMinutes):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "slot_minutes must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(id, dateStr, query.Params.SlotMinutes, slots))
}

func (h *CourtHandler) parseAvailabilityQuery(c *gin.Context, courtID uuid.UUID) (usecase.AvailabilityQuery, string, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return usecase.AvailabilityQuery{}, "", errors.New("date query parameter is required")
	}

	loc, err := h.cfg.Location()
	if err != nil {
		loc = time.UTC
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return usecase.AvailabilityQuery{}, "", errs.ErrInvalidDate
	}

	params := availability.Params{
		SlotMinutes: h.cfg.SlotMinutes,
		FromHour:    h.cfg.OpenHour,
		ToHour:      h.cfg.CloseHour,
	}
	if params.SlotMinutes, err = h.intQuery(c, "slot_minutes", params.SlotMinutes); err != nil {
		return usecase.AvailabilityQuery{}, "", err
	}
	if params.FromHour, err = h.intQuery(c, "from_hour", params.FromHour); err != nil {
		return usecase.AvailabilityQuery{}, "", err
	}
	if params.ToHour, err = h.intQuery(c, "to_hour", params.ToHour); err != nil {
		return usecase.AvailabilityQuery{}, "", err
	}

	return usecase.AvailabilityQuery{CourtID: courtID, Day: day, Params: params}, dateStr, nil
}

func (h *CourtHandler) intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + " value")
	}
	return v, nil
}

func (h *CourtHandler) abortWithCourtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, errs.ErrCourtNameTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Court name already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
