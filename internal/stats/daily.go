package stats

import (
	"fmt"
	"sort"

	"github.com/susu3304/ggclubstats/internal/geoguessr"
)

// ReferenceXP is the fixed reference line drawn on the daily chart.
const ReferenceXP = 600

// DayTotal is the XP earned by the whole club on one calendar day.
type DayTotal struct {
	Date string
	XP   int
}

// AveragePolicy selects which day buckets participate in the average.
type AveragePolicy int

const (
	// IncludeNewest averages over every bucket.
	IncludeNewest AveragePolicy = iota
	// ExcludeNewest leaves out the chronologically last bucket, which is
	// usually still in progress.
	ExcludeNewest
)

// Aggregate buckets activities by calendar day and sums XP per day,
// ascending by date. Zero input records is an error so an empty series
// never reaches the renderer silently.
func Aggregate(items []geoguessr.ActivityItem) ([]DayTotal, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no activities to aggregate")
	}

	xpByDay := make(map[string]int)
	for _, item := range items {
		day, err := item.DayOf()
		if err != nil {
			return nil, err
		}
		xpByDay[day] += item.XPReward
	}

	days := make([]DayTotal, 0, len(xpByDay))
	for day, xp := range xpByDay {
		days = append(days, DayTotal{Date: day, XP: xp})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// Average computes the arithmetic mean of the day totals selected by policy.
func Average(days []DayTotal, policy AveragePolicy) (float64, error) {
	selected := days
	if policy == ExcludeNewest && len(selected) > 0 {
		selected = selected[:len(selected)-1]
	}
	if len(selected) == 0 {
		return 0, fmt.Errorf("no day totals to average")
	}

	sum := 0
	for _, d := range selected {
		sum += d.XP
	}
	return float64(sum) / float64(len(selected)), nil
}
