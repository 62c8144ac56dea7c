// Package analytics derives KPIs, grouped breakdowns, leaderboards and
// customer segmentation from an immutable sales snapshot. Every
// function is pure and total over well-formed input: undefined ratios
// come back as 0 and referential gaps contribute nothing instead of
// faulting, so callers may memoize results keyed on the snapshot
// fingerprint plus their inputs.
package analytics

import (
	"math"
	"time"

	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// KPISnapshot holds the headline numbers of the dashboard. It is
// recomputed on demand and never persisted.
type KPISnapshot struct {
	TotalRevenue        int64   `json:"totalRevenue"`
	CompletedCount      int     `json:"completedCount"`
	AverageTicket       float64 `json:"averageTicket"`
	CurrentMonthRevenue int64   `json:"currentMonthRevenue"`
	GrowthPercent       float64 `json:"growthPercent"`
}

// ComputeKPIs aggregates completed sales into a KPI snapshot. Growth
// compares the calendar month containing now against the month before
// it (rolling the year at January) and is rounded to one decimal;
// when the previous month had no revenue the growth is 0.
func ComputeKPIs(sales []sale.Sale, now time.Time) KPISnapshot {
	var k KPISnapshot

	curMonth, curYear := now.Month(), now.Year()

	prevMonth, prevYear := curMonth-1, curYear
	if curMonth == time.January {
		prevMonth, prevYear = time.December, curYear-1
	}

	var prevRevenue int64

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		k.TotalRevenue += v.Total
		k.CompletedCount++

		switch {
		case v.Date.Month() == curMonth && v.Date.Year() == curYear:
			k.CurrentMonthRevenue += v.Total
		case v.Date.Month() == prevMonth && v.Date.Year() == prevYear:
			prevRevenue += v.Total
		}
	}

	if k.CompletedCount > 0 {
		k.AverageTicket = float64(k.TotalRevenue) / float64(k.CompletedCount)
	}

	if prevRevenue > 0 {
		growth := float64(k.CurrentMonthRevenue-prevRevenue) / float64(prevRevenue) * 100
		k.GrowthPercent = math.Round(growth*10) / 10
	}

	return k
}
