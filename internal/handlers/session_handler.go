package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"homewatt/internal/db"
	"homewatt/internal/estimator"
	"homewatt/internal/report"
	"homewatt/internal/service"
)

type SessionHandler struct {
	weekService *service.WeekService
}

func NewSessionHandler(weekService *service.WeekService) *SessionHandler {
	return &SessionHandler{weekService: weekService}
}

type CreateSessionRequest struct {
	HousingType string `json:"housing_type" binding:"required"`
	RoomConfig  string `json:"room_config" binding:"required"`
}

// CreateSession starts a tracked week for one housing configuration.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "invalid session request",
			Err:  err.Error(),
		})
		return
	}

	session, err := h.weekService.CreateSession(
		estimator.HousingType(req.HousingType),
		estimator.RoomConfig(req.RoomConfig),
	)
	if errors.Is(err, estimator.ErrUnknownProfile) {
		c.JSON(http.StatusNotFound, Response{
			Code: 404,
			Msg:  "unsupported housing configuration",
			Err:  err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Code: 500,
			Msg:  "create session failed",
			Err:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "session created",
		Data: session,
	})
}

type RecordDayRequest struct {
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
}

// RecordDay stores the temperature for one weekday and returns the estimated
// entry. Recording the same day again overwrites it.
func (h *SessionHandler) RecordDay(c *gin.Context) {
	var req RecordDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "invalid day request",
			Err:  err.Error(),
		})
		return
	}

	entry, err := h.weekService.RecordDay(c.Param("id"), estimator.Weekday(c.Param("day")), *req.TemperatureC)
	if err != nil {
		h.renderWeekError(c, err, "record day failed")
		return
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "day recorded",
		Data: entry,
	})
}

// ListDays returns the recorded entries of a session in weekday order.
func (h *SessionHandler) ListDays(c *gin.Context) {
	days, err := h.weekService.ListDays(c.Param("id"))
	if err != nil {
		h.renderWeekError(c, err, "list days failed")
		return
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "recorded days",
		Data: days,
	})
}

// GetReport builds the weekly report over the recorded days.
func (h *SessionHandler) GetReport(c *gin.Context) {
	r, err := h.weekService.WeeklyReport(c.Param("id"))
	if err != nil {
		h.renderWeekError(c, err, "weekly report failed")
		return
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "weekly report",
		Data: r,
	})
}

// GetReportPDF renders the weekly report as a downloadable PDF.
func (h *SessionHandler) GetReportPDF(c *gin.Context) {
	r, err := h.weekService.WeeklyReport(c.Param("id"))
	if err != nil {
		h.renderWeekError(c, err, "weekly report failed")
		return
	}

	pdf, err := report.WeeklyPDF(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Code: 500,
			Msg:  "pdf generation failed",
			Err:  err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("homewatt-week-%s.pdf", r.SessionID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *SessionHandler) renderWeekError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, db.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, Response{Code: 404, Msg: "session not found", Err: err.Error()})
	case errors.Is(err, service.ErrUnknownDay):
		c.JSON(http.StatusBadRequest, Response{Code: 400, Msg: "unknown weekday", Err: err.Error()})
	case errors.Is(err, estimator.ErrEmptyWeek):
		c.JSON(http.StatusBadRequest, Response{Code: 400, Msg: "no days recorded yet", Err: err.Error()})
	case errors.Is(err, estimator.ErrUnknownProfile):
		c.JSON(http.StatusNotFound, Response{Code: 404, Msg: "unsupported housing configuration", Err: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Msg: msg, Err: err.Error()})
	}
}
