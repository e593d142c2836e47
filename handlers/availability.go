package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewdesk/services/availability"
	"crewdesk/utils"
)

// AvailabilityHandler exposes the resolution engine over HTTP. All endpoints
// are pure queries; nothing is persisted from this layer.
type AvailabilityHandler struct {
	Engine availability.Engine
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine availability.Engine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// ResolveHandler answers "who is free" for a date or date range.
// Query params: date (point check) or start+end (range), employees, roles,
// statuses — the list params comma-separated.
func (h *AvailabilityHandler) ResolveHandler(c *gin.Context) {
	requestID := uuid.New().String()

	employees := splitParam(c.Query("employees"))
	roles := splitParam(c.Query("roles"))
	statuses := splitParam(c.Query("statuses"))

	var query availability.Query
	switch {
	case c.Query("start") != "" && c.Query("end") != "":
		start, err := availability.ParseDate(c.Query("start"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid start date", err.Error())
			return
		}
		end, err := availability.ParseDate(c.Query("end"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end date", err.Error())
			return
		}
		query = availability.NewRangeQuery(start, end, employees, roles, statuses)
	case c.Query("date") != "":
		date, err := availability.ParseDate(c.Query("date"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
		query = availability.NewPointQuery(date, employees, roles, statuses)
	default:
		utils.JSONError(c, http.StatusBadRequest, "missing date", "provide either date or start and end")
		return
	}

	result, err := h.Engine.Resolve(query)
	if err != nil {
		h.Logger.Error("availability resolution failed",
			zap.String("requestID", requestID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve availability", err.Error())
		return
	}

	h.Logger.Debug("availability resolved",
		zap.String("requestID", requestID),
		zap.Int("available", len(result.Available)),
		zap.Int("absentees", len(result.Absentees)))

	c.JSON(http.StatusOK, gin.H{
		"requestID": requestID,
		"result":    result,
	})
}

// IsAbsentHandler answers the cheap point check "is this employee absent on
// this date", skipping the booking pass entirely.
func (h *AvailabilityHandler) IsAbsentHandler(c *gin.Context) {
	employeeID := c.Param("employeeID")
	date, err := availability.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	absent, err := h.Engine.IsAbsent(employeeID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check absence", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"employeeID": employeeID, "absent": absent})
}

// IsWorkingHandler answers "does this employee have any commitment on this
// date", counting both absences and active bookings.
func (h *AvailabilityHandler) IsWorkingHandler(c *gin.Context) {
	employeeID := c.Param("employeeID")
	date, err := availability.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	working, err := h.Engine.IsWorking(employeeID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"employeeID": employeeID, "working": working})
}

// splitParam splits a comma-separated query parameter, dropping empties.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
