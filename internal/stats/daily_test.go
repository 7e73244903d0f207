package stats

import (
	"fmt"
	"testing"

	"github.com/susu3304/ggclubstats/internal/geoguessr"
)

func TestAggregate(t *testing.T) {
	items := []geoguessr.ActivityItem{
		{RecordedAt: "2024-01-02T10:00:00Z", XPReward: 120, UserID: "a"},
		{RecordedAt: "2024-01-01T09:00:00Z", XPReward: 50, UserID: "b"},
		{RecordedAt: "2024-01-02T18:00:00Z", XPReward: 80, UserID: "b"},
		{RecordedAt: "2024-01-03T01:00:00Z", XPReward: 10, UserID: "a"},
	}

	days, err := Aggregate(items)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	want := []DayTotal{
		{Date: "2024-01-01", XP: 50},
		{Date: "2024-01-02", XP: 200},
		{Date: "2024-01-03", XP: 10},
	}
	if len(days) != len(want) {
		t.Fatalf("expected %d buckets, got %d: %v", len(want), len(days), days)
	}
	for i, d := range days {
		if d != want[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, d, want[i])
		}
	}
}

func TestAggregateEmptyInputIsError(t *testing.T) {
	if _, err := Aggregate(nil); err == nil {
		t.Error("expected error for nil input, got nil")
	}
	if _, err := Aggregate([]geoguessr.ActivityItem{}); err == nil {
		t.Error("expected error for empty input, got nil")
	}
}

func TestAggregateMalformedTimestampIsError(t *testing.T) {
	items := []geoguessr.ActivityItem{
		{RecordedAt: "2024-01-02", XPReward: 120, UserID: "a"},
	}
	if _, err := Aggregate(items); err == nil {
		t.Error("expected error for malformed timestamp, got nil")
	}
}

// Re-aggregating the aggregator's own output as synthetic one-record days
// must reproduce the same totals.
func TestAggregateIdempotent(t *testing.T) {
	items := []geoguessr.ActivityItem{
		{RecordedAt: "2024-01-02T10:00:00Z", XPReward: 120, UserID: "a"},
		{RecordedAt: "2024-01-01T09:00:00Z", XPReward: 50, UserID: "b"},
		{RecordedAt: "2024-01-02T18:00:00Z", XPReward: 80, UserID: "b"},
	}

	first, err := Aggregate(items)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	synthetic := make([]geoguessr.ActivityItem, 0, len(first))
	for _, d := range first {
		synthetic = append(synthetic, geoguessr.ActivityItem{
			RecordedAt: fmt.Sprintf("%sT00:00:00Z", d.Date),
			XPReward:   d.XP,
		})
	}

	second, err := Aggregate(synthetic)
	if err != nil {
		t.Fatalf("Aggregate (second pass): %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("bucket count changed: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("bucket %d changed: %+v -> %+v", i, first[i], second[i])
		}
	}
}

func TestAverage(t *testing.T) {
	days := []DayTotal{
		{Date: "2024-01-01", XP: 100},
		{Date: "2024-01-02", XP: 200},
		{Date: "2024-01-03", XP: 300},
	}

	tests := []struct {
		name   string
		days   []DayTotal
		policy AveragePolicy
		want   float64
	}{
		{name: "exclude newest", days: days, policy: ExcludeNewest, want: 150},
		{name: "include newest", days: days, policy: IncludeNewest, want: 200},
		{name: "single day include", days: days[:1], policy: IncludeNewest, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(tt.days, tt.policy)
			if err != nil {
				t.Fatalf("Average: %v", err)
			}
			if got != tt.want {
				t.Errorf("Average = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageEmptySelectionIsError(t *testing.T) {
	if _, err := Average(nil, IncludeNewest); err == nil {
		t.Error("expected error for empty input, got nil")
	}
	// A single bucket with the newest excluded leaves nothing to average.
	single := []DayTotal{{Date: "2024-01-01", XP: 100}}
	if _, err := Average(single, ExcludeNewest); err == nil {
		t.Error("expected error when exclusion empties the selection, got nil")
	}
}
