package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homewatt/internal/estimator"
	"homewatt/internal/tariff"
)

func TestEstimateDaily(t *testing.T) {
	svc := NewEstimateService(tariff.Default())

	est, err := svc.EstimateDaily(estimator.HousingFlat, estimator.Rooms2BHK, 25)
	require.NoError(t, err)

	assert.InDelta(t, 14.8, est.Breakdown.Total, 1e-9)
	assert.InDelta(t, 88.8, est.CostEstimate, 1e-9)
	assert.Equal(t, "Comfortable", est.Weather)
	assert.Equal(t, "Comfortable Day Tips", est.Tip.Title)
}

func TestEstimateDailyHot(t *testing.T) {
	svc := NewEstimateService(tariff.New(8, 4))

	est, err := svc.EstimateDaily(estimator.HousingTenement, estimator.Rooms1BHK, 40)
	require.NoError(t, err)

	assert.InDelta(t, 14.4, est.Breakdown.Total, 1e-9)
	assert.InDelta(t, 14.4*8, est.CostEstimate, 1e-9)
	assert.Equal(t, "Very Hot", est.Weather)
	assert.Equal(t, "Hot Day Tips", est.Tip.Title)
}

func TestEstimateDailyUnknownProfile(t *testing.T) {
	svc := NewEstimateService(tariff.Default())

	_, err := svc.EstimateDaily("castle", estimator.Rooms2BHK, 25)
	assert.ErrorIs(t, err, estimator.ErrUnknownProfile)
}
