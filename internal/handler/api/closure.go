package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "reservatenis/internal/handler/dto/request"
	resdto "reservatenis/internal/handler/dto/response"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClosureHandler struct {
	closureUseCase usecase.ClosureUseCase
}

func NewClosureHandler(closureUseCase usecase.ClosureUseCase) *ClosureHandler {
	return &ClosureHandler{
		closureUseCase: closureUseCase,
	}
}

// @Summary Create closure
// @Description Block a time window on one court, or all courts when court_id is null (admin only)
// @Tags closures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClosureRequest true "Closure request"
// @Success 201 {object} resdto.ClosureResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /closures [post]
func (h *ClosureHandler) CreateClosure(c *gin.Context) {
	var req reqdto.CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	closureEntity, err := h.closureUseCase.CreateClosure(c.Request.Context(), usecase.CreateClosureInput{
		CourtID: req.CourtID,
		Start:   req.StartTime,
		End:     req.EndTime,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End time must be after start time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClosure(closureEntity))
}

// @Summary List closures
// @Description List closures, optionally restricted to a time window
// @Tags closures
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.ClosureResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /closures [get]
func (h *ClosureHandler) ListClosures(c *gin.Context) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		to = &t
	}

	closures, err := h.closureUseCase.ListClosures(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClosures(closures))
}

// @Summary Delete closure
// @Description Remove a closure window (admin only)
// @Tags closures
// @Security BearerAuth
// @Param id path string true "Closure ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /closures/{id} [delete]
func (h *ClosureHandler) DeleteClosure(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid closure ID format",
		})
		return
	}

	if err := h.closureUseCase.DeleteClosure(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrClosureNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Closure not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
