package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TurnoHandler handles HTTP requests for turno operations
type TurnoHandler struct {
	turnoService       service.TurnoServiceInterface
	importService      service.ImportServiceInterface
	maxUploadBytes     int64
	cleanupDefaultDays int
}

// NewTurnoHandler creates a new turno handler
func NewTurnoHandler(turnoService service.TurnoServiceInterface, importService service.ImportServiceInterface, maxUploadBytes int64, cleanupDefaultDays int) *TurnoHandler {
	return &TurnoHandler{
		turnoService:       turnoService,
		importService:      importService,
		maxUploadBytes:     maxUploadBytes,
		cleanupDefaultDays: cleanupDefaultDays,
	}
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

func personIDParam(c *gin.Context) *string {
	personID := c.Query("person_id")
	if personID == "" {
		return nil
	}
	return &personID
}

// respondError maps the error taxonomy to HTTP statuses. Unexpected
// failures are logged and reported with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsReadOnlyMode(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// ListTurnos handles GET /turnos?from&to&person_id
// @Summary List turnos in a date range
// @Description Return all turno records with date in the inclusive [from, to] range, ascending by date
// @Tags turnos
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param person_id query string false "Person identifier"
// @Success 200 {object} service.TurnoListResponse "Successfully retrieved turnos"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos [get]
func (h *TurnoHandler) ListTurnos(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	list, err := h.turnoService.GetRange(from, to, personIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetToday handles GET /turnos/today?person_id
// @Summary Get today's turno
// @Description Return the turno record for the current localized date
// @Tags turnos
// @Accept json
// @Produce json
// @Param person_id query string false "Person identifier"
// @Success 200 {object} service.TurnoResponse "Today's turno"
// @Failure 404 {object} ErrorResponse "No turno for today"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos/today [get]
func (h *TurnoHandler) GetToday(c *gin.Context) {
	turno, err := h.turnoService.GetToday(personIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turno)
}

// GetTurno handles GET /turnos/:date?person_id
// @Summary Get a turno by date
// @Description Return the turno record stored at the given date (and optional person)
// @Tags turnos
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param person_id query string false "Person identifier"
// @Success 200 {object} service.TurnoResponse "The turno record"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "Turno not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos/{date} [get]
func (h *TurnoHandler) GetTurno(c *gin.Context) {
	turno, err := h.turnoService.GetByDate(c.Param("date"), personIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turno)
}

// UpsertTurno handles POST /turnos
// @Summary Create or replace a turno
// @Description Validate a turno candidate and create or fully replace the record at its (date, person) key
// @Tags turnos
// @Accept json
// @Produce json
// @Param turno body service.UpsertTurnoRequest true "Turno fields"
// @Success 200 {object} service.TurnoResponse "The stored record"
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 403 {object} ErrorResponse "Storage is read-only"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos [post]
func (h *TurnoHandler) UpsertTurno(c *gin.Context) {
	var req service.UpsertTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	turno, err := h.turnoService.Upsert(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turno)
}

// DeleteTurno handles DELETE /turnos/:date?person_id
// @Summary Delete a turno
// @Description Remove the turno record at the given date (and optional person)
// @Tags turnos
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param person_id query string false "Person identifier"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Turno not found"
// @Failure 403 {object} ErrorResponse "Storage is read-only"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos/{date} [delete]
func (h *TurnoHandler) DeleteTurno(c *gin.Context) {
	if err := h.turnoService.Delete(c.Param("date"), personIDParam(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportExcel handles POST /turnos/excel
// @Summary Bulk import turnos from a spreadsheet
// @Description Parse an uploaded .xlsx file and upsert its rows, reporting per-row warnings and counts
// @Tags turnos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Param person_id query string false "Person identifier applied to every imported row"
// @Success 200 {object} service.ImportResult "Import counts and warnings"
// @Failure 400 {object} ErrorResponse "Upload constraint violated or file unreadable"
// @Failure 403 {object} ErrorResponse "Storage is read-only"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos/excel [post]
func (h *TurnoHandler) ImportExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	// Upload constraints are enforced before any parsing.
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidFileType.Error()})
		return
	}
	if fileHeader.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrEmptyFile.Error()})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrFileTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportExcel(file, personIDParam(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNoDataRows) || errors.Is(err, apperrors.ErrMissingColumns) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStats handles GET /turnos/stats?from&to
// @Summary Aggregate turno statistics
// @Description Return total, per-shift-type and vacation counts over an optional date range
// @Tags turnos
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} repository.ShiftStats "Aggregated counts"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos/stats [get]
func (h *TurnoHandler) GetStats(c *gin.Context) {
	stats, err := h.turnoService.GetStats(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Cleanup handles DELETE /turnos/cleanup?days_old
// @Summary Delete old turnos
// @Description Delete records with date strictly before today minus days_old (default 365) and return the deleted count
// @Tags turnos
// @Accept json
// @Produce json
// @Param days_old query int false "Retention window in days" default(365)
// @Success 200 {object} service.CleanupResponse "Deleted count and applied cutoff"
// @Failure 400 {object} ErrorResponse "Invalid days_old"
// @Failure 403 {object} ErrorResponse "Storage is read-only"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /turnos/cleanup [delete]
func (h *TurnoHandler) Cleanup(c *gin.Context) {
	daysOld := h.cleanupDefaultDays
	if raw := c.Query("days_old"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days_old must be a number"})
			return
		}
		daysOld = parsed
	}

	result, err := h.turnoService.Cleanup(daysOld)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
