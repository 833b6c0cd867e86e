package statistics

import (
	"fmt"
	"sort"

	"github.com/prepwise/studyplan/internal/planner"
)

// AdherenceStatistics holds plan adherence numbers for a time period
type AdherenceStatistics struct {
	Period         string // "2026-03" for monthly
	DoneDays       int
	PartialDays    int
	MissedDays     int
	PendingDays    int
	PlannedMinutes int
	ActualMinutes  int
}

// AggregateStatistics holds totals across all periods
type AggregateStatistics struct {
	DoneDays       int
	PartialDays    int
	MissedDays     int
	PendingDays    int
	PlannedMinutes int
	ActualMinutes  int
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []AdherenceStatistics
	Aggregate AggregateStatistics
}

// AdherenceRate is the share of elapsed study days that were completed.
// Pending days are excluded since they have not happened yet.
func (a AggregateStatistics) AdherenceRate() float64 {
	elapsed := a.DoneDays + a.PartialDays + a.MissedDays
	if elapsed == 0 {
		return 0
	}
	return float64(a.DoneDays) / float64(elapsed)
}

// periodData tracks counts per period
type periodData struct {
	doneDays       int
	partialDays    int
	missedDays     int
	pendingDays    int
	plannedMinutes int
	actualMinutes  int
}

// CalculateStatistics rolls daily study logs up into per-month adherence numbers.
// It accepts optional year and month filters (0 means no filter).
func CalculateStatistics(logs []planner.DailyLog, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)

	for _, log := range logs {
		logYear := log.Date.Year()
		logMonth := int(log.Date.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		ensurePeriodExists(stats, period)
		data := stats[period]

		switch log.Status {
		case planner.LogStatusDone:
			data.doneDays++
		case planner.LogStatusPartial:
			data.partialDays++
		case planner.LogStatusMissed:
			data.missedDays++
		case planner.LogStatusPending:
			data.pendingDays++
		}
		data.plannedMinutes += log.PlannedMinutes
		data.actualMinutes += log.ActualTotalMinutes
	}

	return buildResult(stats)
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{}
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData) StatisticsResult {
	periods := make([]AdherenceStatistics, 0, len(stats))

	var aggregate AggregateStatistics
	for period, data := range stats {
		periods = append(periods, AdherenceStatistics{
			Period:         period,
			DoneDays:       data.doneDays,
			PartialDays:    data.partialDays,
			MissedDays:     data.missedDays,
			PendingDays:    data.pendingDays,
			PlannedMinutes: data.plannedMinutes,
			ActualMinutes:  data.actualMinutes,
		})
		aggregate.DoneDays += data.doneDays
		aggregate.PartialDays += data.partialDays
		aggregate.MissedDays += data.missedDays
		aggregate.PendingDays += data.pendingDays
		aggregate.PlannedMinutes += data.plannedMinutes
		aggregate.ActualMinutes += data.actualMinutes
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}
