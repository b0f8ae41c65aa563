package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homewatt/internal/db"
	"homewatt/internal/estimator"
	"homewatt/internal/tariff"
)

var dbSeq int

func newWeekService(t *testing.T) *WeekService {
	t.Helper()
	dbSeq++
	// Distinct named in-memory database per test.
	conn, err := db.Open(fmt.Sprintf("file:weektest%d?mode=memory&cache=shared", dbSeq))
	require.NoError(t, err)
	return NewWeekService(db.NewSessionRepository(conn), db.NewDayRepository(conn), tariff.Default())
}

func TestCreateSessionValidatesProfile(t *testing.T) {
	svc := newWeekService(t)

	session, err := svc.CreateSession(estimator.HousingFlat, estimator.Rooms2BHK)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "flat", session.HousingType)

	_, err = svc.CreateSession("bungalow", estimator.Rooms2BHK)
	assert.ErrorIs(t, err, estimator.ErrUnknownProfile)
}

func TestRecordDayAndList(t *testing.T) {
	svc := newWeekService(t)
	session, err := svc.CreateSession(estimator.HousingFlat, estimator.Rooms2BHK)
	require.NoError(t, err)

	// Record out of order; listing must come back Monday first.
	_, err = svc.RecordDay(session.ID, estimator.Wednesday, 31)
	require.NoError(t, err)
	entry, err := svc.RecordDay(session.ID, estimator.Monday, 25)
	require.NoError(t, err)

	assert.InDelta(t, 14.8, entry.Total, 1e-9)
	assert.InDelta(t, 3.6, entry.FanAC, 1e-9)

	days, err := svc.ListDays(session.ID)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Monday", days[0].Day)
	assert.Equal(t, "Wednesday", days[1].Day)
}

func TestRecordDayOverwrites(t *testing.T) {
	svc := newWeekService(t)
	session, err := svc.CreateSession(estimator.HousingTenement, estimator.Rooms1BHK)
	require.NoError(t, err)

	_, err = svc.RecordDay(session.ID, estimator.Friday, 25)
	require.NoError(t, err)
	entry, err := svc.RecordDay(session.ID, estimator.Friday, 40)
	require.NoError(t, err)
	assert.InDelta(t, 14.4, entry.Total, 1e-9)

	days, err := svc.ListDays(session.ID)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 40.0, days[0].TemperatureC)
	assert.InDelta(t, 14.4, days[0].Total, 1e-9)
}

func TestRecordDayErrors(t *testing.T) {
	svc := newWeekService(t)
	session, err := svc.CreateSession(estimator.HousingFlat, estimator.Rooms1BHK)
	require.NoError(t, err)

	_, err = svc.RecordDay(session.ID, "Funday", 25)
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = svc.RecordDay("no-such-session", estimator.Monday, 25)
	assert.ErrorIs(t, err, db.ErrSessionNotFound)
}

func TestWeeklyReportFullWeek(t *testing.T) {
	svc := newWeekService(t)
	session, err := svc.CreateSession(estimator.HousingFlat, estimator.Rooms2BHK)
	require.NoError(t, err)

	for _, d := range estimator.Week() {
		_, err := svc.RecordDay(session.ID, d, 25)
		require.NoError(t, err)
	}

	report, err := svc.WeeklyReport(session.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, report.Summary.Days)
	assert.InDelta(t, 103.6, report.Summary.TotalKWh, 1e-9)
	assert.InDelta(t, 14.8, report.Summary.AverageKWh, 1e-9)
	assert.Equal(t, estimator.Monday, report.Summary.PeakDay)
	assert.InDelta(t, 25, report.AvgTemperatureC, 1e-9)
	assert.InDelta(t, 103.6*6, report.WeeklyCost, 1e-9)
	assert.InDelta(t, 103.6*4.3*6, report.MonthlyCost, 1e-9)
	require.Len(t, report.Days, 7)
	assert.Equal(t, "Comfortable", report.Days[0].Weather)
	assert.NotEmpty(t, report.Recommendations)
}

func TestWeeklyReportPartialWeekAndPeak(t *testing.T) {
	svc := newWeekService(t)
	session, err := svc.CreateSession(estimator.HousingTenement, estimator.Rooms3BHK)
	require.NoError(t, err)

	_, err = svc.RecordDay(session.ID, estimator.Monday, 20)
	require.NoError(t, err)
	_, err = svc.RecordDay(session.ID, estimator.Tuesday, 38)
	require.NoError(t, err)

	report, err := svc.WeeklyReport(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.Days)
	assert.Equal(t, estimator.Tuesday, report.Summary.PeakDay)
	assert.InDelta(t, report.Summary.TotalKWh/2, report.Summary.AverageKWh, 1e-9)
}

func TestWeeklyReportEmptyWeek(t *testing.T) {
	svc := newWeekService(t)
	session, err := svc.CreateSession(estimator.HousingFlat, estimator.Rooms1BHK)
	require.NoError(t, err)

	_, err = svc.WeeklyReport(session.ID)
	assert.ErrorIs(t, err, estimator.ErrEmptyWeek)
}
