package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homewatt/internal/estimator"
	"homewatt/internal/service"
)

type EstimateHandler struct {
	estimateService *service.EstimateService
}

func NewEstimateHandler(estimateService *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

type EstimateRequest struct {
	HousingType  string   `json:"housing_type" binding:"required"`
	RoomConfig   string   `json:"room_config" binding:"required"`
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
}

// Estimate returns the one-shot daily estimate for a housing configuration
// and temperature.
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "invalid estimate request",
			Err:  err.Error(),
		})
		return
	}

	est, err := h.estimateService.EstimateDaily(
		estimator.HousingType(req.HousingType),
		estimator.RoomConfig(req.RoomConfig),
		*req.TemperatureC,
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
			Msg:  "estimate failed",
			Err:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "estimate computed",
		Data: est,
	})
}

// GetProfiles exposes the base consumption table for display and debugging.
func (h *EstimateHandler) GetProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "base profiles",
		Data: estimator.Profiles(),
	})
}

// GetMultipliers exposes the weather band table.
func (h *EstimateHandler) GetMultipliers(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "weather multipliers",
		Data: estimator.Multipliers(),
	})
}
