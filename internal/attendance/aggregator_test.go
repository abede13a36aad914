package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davomat/attendance-backend-go/internal/models"
)

var (
	testWorkHours = models.WorkHoursPolicy{StartHour: 9, EndHour: 18}
	testInterval  = models.IntervalPolicy{Minutes: 30, GracePeriod: 5}
)

func sampleAt(t time.Time, inZone bool) models.LocationSample {
	return models.LocationSample{
		EmployeeID: "emp1",
		Latitude:   41.2995,
		Longitude:  69.2401,
		InZone:     inZone,
		Timestamp:  t,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestAggregateDayEmpty(t *testing.T) {
	record, err := AggregateDay("emp1", "2025-03-10", nil, testWorkHours, testInterval)
	require.NoError(t, err)
	assert.Nil(t, record, "empty day must yield no record, not a zero record")
}

func TestAggregateDaySingleSample(t *testing.T) {
	samples := []models.LocationSample{sampleAt(at(9, 30), true)}

	record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 0.0, record.TotalWorkHours)
	assert.Equal(t, 0.0, record.AbsentHours)
	assert.Equal(t, 0.0, record.PresentHours)
	assert.Equal(t, 30, record.LateMinutes)
	assert.Equal(t, 1, record.TotalLocations)
	assert.Equal(t, 1, record.ValidLocations)
}

func TestAggregateDayGapBoundary(t *testing.T) {
	// max gap = 30 + 5 = 35 minutes

	t.Run("gap exactly at threshold", func(t *testing.T) {
		samples := []models.LocationSample{
			sampleAt(at(9, 0), true),
			sampleAt(at(9, 35), true),
		}
		record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
		require.NoError(t, err)
		assert.Equal(t, 0.0, record.AbsentHours)
	})

	t.Run("gap five minutes over", func(t *testing.T) {
		samples := []models.LocationSample{
			sampleAt(at(9, 0), true),
			sampleAt(at(9, 40), true),
		}
		record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
		require.NoError(t, err)
		// Only the 5 excess minutes count: 5/60 rounds to 0.08
		assert.Equal(t, 0.08, record.AbsentHours)
	})
}

func TestAggregateDayScenario(t *testing.T) {
	// Gaps 15, 50, 50 minutes against a 35-minute tolerance: 30 excess
	// minutes of absence over a 1h55m span
	samples := []models.LocationSample{
		sampleAt(at(8, 55), true),
		sampleAt(at(9, 10), true),
		sampleAt(at(10, 0), true),
		sampleAt(at(10, 50), true),
	}

	record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 1.92, record.TotalWorkHours)
	assert.Equal(t, 0.5, record.AbsentHours)
	assert.Equal(t, 1.42, record.PresentHours)
	assert.Equal(t, 0, record.LateMinutes, "arrived before 09:00")
	assert.Equal(t, 4, record.TotalLocations)
	assert.Equal(t, 4, record.ValidLocations)
	assert.Equal(t, at(8, 55), record.WorkStartTime)
	assert.Equal(t, at(10, 50), record.WorkEndTime)
}

func TestAggregateDaySortsOutOfOrderSamples(t *testing.T) {
	samples := []models.LocationSample{
		sampleAt(at(10, 50), true),
		sampleAt(at(8, 55), false),
		sampleAt(at(10, 0), true),
		sampleAt(at(9, 10), true),
	}

	record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
	require.NoError(t, err)

	assert.Equal(t, at(8, 55), record.WorkStartTime)
	assert.Equal(t, at(10, 50), record.WorkEndTime)
	assert.Equal(t, 1.92, record.TotalWorkHours)
	assert.Equal(t, 3, record.ValidLocations)
}

func TestAggregateDayLateness(t *testing.T) {
	t.Run("late arrival", func(t *testing.T) {
		samples := []models.LocationSample{sampleAt(at(9, 47), true)}
		record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
		require.NoError(t, err)
		assert.Equal(t, 47, record.LateMinutes)
	})

	t.Run("fractional minutes floor", func(t *testing.T) {
		first := time.Date(2025, 3, 10, 9, 12, 40, 0, time.UTC)
		samples := []models.LocationSample{sampleAt(first, true)}
		record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
		require.NoError(t, err)
		assert.Equal(t, 12, record.LateMinutes)
	})

	t.Run("reference date comes from the first sample", func(t *testing.T) {
		// The record date parameter and the sample date disagree; the
		// sample's own calendar date wins for the lateness reference
		first := time.Date(2025, 3, 11, 9, 20, 0, 0, time.UTC)
		samples := []models.LocationSample{sampleAt(first, true)}
		record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
		require.NoError(t, err)
		assert.Equal(t, 20, record.LateMinutes)
	})
}

func TestAggregateDayIdempotent(t *testing.T) {
	samples := []models.LocationSample{
		sampleAt(at(8, 55), true),
		sampleAt(at(9, 10), false),
		sampleAt(at(10, 0), true),
		sampleAt(at(10, 50), true),
	}

	first, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
	require.NoError(t, err)
	second, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Gaps are sub-intervals of the total span, so presence can never exceed
// the span or drop below zero no matter how irregular the cadence is
func TestAggregateDayPresenceInvariant(t *testing.T) {
	cases := [][]int{
		{0, 1, 2, 3},
		{0, 40, 80, 120, 500},
		{0, 36, 72},
		{0, 600},
		{0, 5, 300, 305, 310, 600},
	}

	base := at(9, 0)
	for _, offsets := range cases {
		var samples []models.LocationSample
		for _, m := range offsets {
			samples = append(samples, sampleAt(base.Add(time.Duration(m)*time.Minute), true))
		}

		record, err := AggregateDay("emp1", "2025-03-10", samples, testWorkHours, testInterval)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, record.PresentHours, 0.0)
		assert.LessOrEqual(t, record.PresentHours, record.TotalWorkHours)
	}
}

func TestSummarize(t *testing.T) {
	records := []models.DailyRecord{
		{TotalWorkHours: 8, PresentHours: 7, AbsentHours: 1},
		{TotalWorkHours: 8, PresentHours: 6, AbsentHours: 2},
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.TotalDays)
	assert.Equal(t, 16.0, summary.TotalWorkHours)
	assert.Equal(t, 13.0, summary.TotalPresentHours)
	assert.Equal(t, 3.0, summary.TotalAbsentHours)
	assert.Equal(t, 81.3, summary.EfficiencyPercent)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.TotalWorkHours)
	assert.Equal(t, 0.0, summary.EfficiencyPercent, "efficiency is defined as 0 for an empty span")
}
