// Package attendance derives daily and ranged work metrics from raw
// location samples.
package attendance

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/davomat/attendance-backend-go/internal/models"
)

// ErrNegativePresence reports an internal inconsistency between the total
// work span and the accumulated gap excess. Gaps are sub-intervals of the
// span, so this cannot happen with well-formed input; it is surfaced
// instead of clamped so the bug is visible.
var ErrNegativePresence = errors.New("attendance: present hours computed below zero")

// Tolerance for float drift when checking the presence invariant
const presenceEpsilon = 1e-9

// AggregateDay computes the daily record for one employee and date from
// the full set of that day's samples. It returns nil when there are no
// samples; callers must not store a record for an empty day.
//
// Samples may arrive in any order; they are stably sorted by timestamp
// before aggregation. Hour values are rounded to two decimals only at the
// end, so intermediate sums carry full precision.
func AggregateDay(employeeID, date string, samples []models.LocationSample, workHours models.WorkHoursPolicy, interval models.IntervalPolicy) (*models.DailyRecord, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	sorted := make([]models.LocationSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]

	totalHours := last.Timestamp.Sub(first.Timestamp).Hours()

	// Only the portion of a gap beyond the agreed cadence counts as absence
	maxGap := interval.MaxGapMinutes()
	var absentHours float64
	for i := 0; i < len(sorted)-1; i++ {
		gapMinutes := sorted[i+1].Timestamp.Sub(sorted[i].Timestamp).Minutes()
		if gapMinutes > maxGap {
			absentHours += (gapMinutes - maxGap) / 60
		}
	}

	presentHours := totalHours - absentHours
	if presentHours < 0 {
		if presentHours < -presenceEpsilon {
			return nil, ErrNegativePresence
		}
		presentHours = 0
	}

	// Lateness is measured against work start on the first sample's own
	// calendar date
	t := first.Timestamp
	workStart := time.Date(t.Year(), t.Month(), t.Day(), workHours.StartHour, 0, 0, 0, t.Location())
	lateMinutes := 0
	if t.After(workStart) {
		lateMinutes = int(t.Sub(workStart).Minutes())
	}

	validCount := 0
	for _, s := range sorted {
		if s.InZone {
			validCount++
		}
	}

	return &models.DailyRecord{
		EmployeeID:     employeeID,
		Date:           date,
		WorkStartTime:  first.Timestamp,
		WorkEndTime:    last.Timestamp,
		TotalWorkHours: round2(totalHours),
		PresentHours:   round2(presentHours),
		AbsentHours:    round2(absentHours),
		TotalLocations: len(sorted),
		ValidLocations: validCount,
		LateMinutes:    lateMinutes,
	}, nil
}

// Summarize reduces an ordered span of daily records into range totals.
// An empty span yields a zero summary, not an error.
func Summarize(records []models.DailyRecord) models.RangeSummary {
	var totalWork, totalPresent, totalAbsent float64
	for _, r := range records {
		totalWork += r.TotalWorkHours
		totalPresent += r.PresentHours
		totalAbsent += r.AbsentHours
	}

	efficiency := 0.0
	if totalWork > 0 {
		efficiency = totalPresent / totalWork * 100
	}

	return models.RangeSummary{
		TotalDays:         len(records),
		TotalWorkHours:    round2(totalWork),
		TotalPresentHours: round2(totalPresent),
		TotalAbsentHours:  round2(totalAbsent),
		EfficiencyPercent: round1(efficiency),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
