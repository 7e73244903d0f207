package geoguessr

import (
	"fmt"
	"strings"
	"time"
)

// ActivityItem is one unit of observed club member activity.
type ActivityItem struct {
	RecordedAt string `json:"recordedAt"`
	XPReward   int    `json:"xpReward"`
	UserID     string `json:"userId"`
}

// Member is one club roster entry. Nick is not unique and may be empty.
type Member struct {
	UserID string `json:"userId"`
	Nick   string `json:"nick"`
}

type activitiesResponse struct {
	Items           []ActivityItem `json:"items"`
	PaginationToken string         `json:"paginationToken"`
}

type membersResponse struct {
	Items []struct {
		User Member `json:"user"`
	} `json:"items"`
}

// DayOf extracts the calendar date (YYYY-MM-DD) from an activity timestamp.
// The timestamp is fully parsed (fractional seconds and offsets tolerated)
// and cross-checked against simple truncation at the 'T' separator; any
// disagreement means the upstream format shifted and is reported as an error.
func (a ActivityItem) DayOf() (string, error) {
	return DayOf(a.RecordedAt)
}

// DayOf is the canonical date extraction shared by the fetch loop, the
// daily aggregator and the inactivity reporter.
func DayOf(recordedAt string) (string, error) {
	ts, err := time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return "", fmt.Errorf("unparseable activity timestamp %q: %w", recordedAt, err)
	}
	parsed := ts.UTC().Format("2006-01-02")

	truncated, _, found := strings.Cut(recordedAt, "T")
	if !found || truncated != parsed {
		return "", fmt.Errorf("activity timestamp %q: date prefix %q disagrees with parsed date %q", recordedAt, truncated, parsed)
	}
	return parsed, nil
}

// recordedTime parses the full timestamp, used for ordering checks.
func (a ActivityItem) recordedTime() (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, a.RecordedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable activity timestamp %q: %w", a.RecordedAt, err)
	}
	return ts, nil
}
