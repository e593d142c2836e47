package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crewdesk/services/availability"
	"crewdesk/utils"
)

// CalendarHandler serves the merged absence/booking timeline.
type CalendarHandler struct {
	Calendar availability.CalendarService
	Logger   *zap.Logger
}

func NewCalendarHandler(calendar availability.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Calendar: calendar, Logger: logger}
}

// EntriesHandler returns every absence and booking entry for a date range.
// Query params: start, end, employees (comma-separated, optional), sort
// ("chronological" to order by start time; the default keeps absences before
// bookings as aggregated).
func (h *CalendarHandler) EntriesHandler(c *gin.Context) {
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
	employees := splitParam(c.Query("employees"))

	entries, err := h.Calendar.Entries(start, end, employees)
	if err != nil {
		h.Logger.Error("calendar aggregation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to build calendar", err.Error())
		return
	}

	if c.Query("sort") == "chronological" {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Start.Before(entries[j].Start)
		})
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}
