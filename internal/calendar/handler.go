package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Source supplies the events of one record kind for bucketing.
type Source interface {
	Events(ctx context.Context) ([]Event, error)
}

// Handler serves the partitioned calendar views over the schedule and
// conference collections.
type Handler struct {
	schedules   Source
	conferences Source
}

func NewHandler(schedules, conferences Source) *Handler {
	return &Handler{schedules: schedules, conferences: conferences}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/calendar/day", h.Day)
	api.GET("/calendar/week", h.Week)
	api.GET("/calendar/month-grid", h.MonthGrid)
}

type dayResponse struct {
	Date        string  `json:"date"`
	Schedules   []Event `json:"schedules"`
	Conferences []Event `json:"conferences"`
}

type weekResponse struct {
	WeekStart   string  `json:"week_start"`
	WeekEnd     string  `json:"week_end"`
	Schedules   []Event `json:"schedules"`
	Conferences []Event `json:"conferences"`
}

type gridCell struct {
	Date           string  `json:"date"`
	IsCurrentMonth bool    `json:"is_current_month"`
	IsToday        bool    `json:"is_today"`
	Schedules      []Event `json:"schedules"`
	Conferences    []Event `json:"conferences"`
}

func (h *Handler) load(c echo.Context) ([]Event, []Event, error) {
	ctx := c.Request().Context()
	schedules, err := h.schedules.Events(ctx)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	conferences, err := h.conferences.Events(ctx)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return schedules, conferences, nil
}

func refDate(c echo.Context) (time.Time, error) {
	param := c.QueryParam("date")
	if param == "" {
		return time.Now(), nil
	}
	d, ok := ParseDateOrNone(param)
	if !ok {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return d, nil
}

func (h *Handler) Day(c echo.Context) error {
	day, err := refDate(c)
	if err != nil {
		return err
	}
	schedules, conferences, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dayResponse{
		Date:        day.Format(ISODate),
		Schedules:   emptyIfNil(ForDay(schedules, day)),
		Conferences: emptyIfNil(ForDay(conferences, day)),
	})
}

func (h *Handler) Week(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return err
	}
	schedules, conferences, err := h.load(c)
	if err != nil {
		return err
	}
	start := WeekStart(ref)
	return c.JSON(http.StatusOK, weekResponse{
		WeekStart:   start.Format(ISODate),
		WeekEnd:     start.AddDate(0, 0, 6).Format(ISODate),
		Schedules:   emptyIfNil(ForWeek(schedules, ref)),
		Conferences: emptyIfNil(ForWeek(conferences, ref)),
	})
}

func (h *Handler) MonthGrid(c echo.Context) error {
	ref := time.Now()
	if param := c.QueryParam("month"); param != "" {
		parsed, err := time.ParseInLocation("2006-01", param, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "month must be YYYY-MM")
		}
		ref = parsed
	}

	schedules, conferences, err := h.load(c)
	if err != nil {
		return err
	}

	days := MonthGridDays(ref)
	cells := make([]gridCell, 0, len(days))
	for _, day := range days {
		cells = append(cells, gridCell{
			Date:           day.Format(ISODate),
			IsCurrentMonth: IsCurrentMonth(day, ref),
			IsToday:        IsToday(day),
			Schedules:      emptyIfNil(ForDay(schedules, day)),
			Conferences:    emptyIfNil(ForDay(conferences, day)),
		})
	}
	return c.JSON(http.StatusOK, cells)
}

func emptyIfNil(events []Event) []Event {
	if events == nil {
		return []Event{}
	}
	return events
}
