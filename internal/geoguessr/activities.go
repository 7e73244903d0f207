package geoguessr

import (
	"context"
	"fmt"
	"log"
	"time"
)

const (
	activityPageSize = 25
	pageThrottle     = 10 * time.Millisecond

	// weeklyXPReward marks "weekly challenge" entries, which are excluded
	// from daily stats.
	weeklyXPReward = 1000
)

// FetchActivityWindow pages through the club activity feed (newest first)
// until records covering targetDays distinct calendar days have been
// collected, and returns them in response order.
//
// The loop stops mid-page as soon as a record would open a day beyond the
// requested window; that record and everything after it are discarded, so
// the result spans at most targetDays distinct dates.
func (c *Client) FetchActivityWindow(ctx context.Context, clubID string, targetDays int) ([]ActivityItem, error) {
	if targetDays < 1 {
		return nil, fmt.Errorf("targetDays must be at least 1, got %d", targetDays)
	}

	daysSeen := make(map[string]bool)
	var collected []ActivityItem
	var prevTime time.Time
	paginationToken := ""

	for len(daysSeen) <= targetDays {
		page, err := c.activities(ctx, clubID, activityPageSize, paginationToken)
		if err != nil {
			return nil, err
		}
		if page.Items == nil {
			return nil, fmt.Errorf("malformed activities page: missing items")
		}
		if len(page.Items) == 0 {
			return nil, fmt.Errorf("malformed activities page: empty items, cannot make progress")
		}

		log.Printf("fetched %d activities, oldest recorded at %s", len(page.Items), page.Items[len(page.Items)-1].RecordedAt)

		for _, item := range page.Items {
			ts, err := item.recordedTime()
			if err != nil {
				return nil, err
			}
			if !prevTime.IsZero() && ts.After(prevTime) {
				return nil, fmt.Errorf("malformed activities page: record at %s is newer than its predecessor at %s", item.RecordedAt, prevTime.Format(time.RFC3339))
			}
			prevTime = ts

			if item.XPReward == weeklyXPReward {
				continue
			}

			day, err := item.DayOf()
			if err != nil {
				return nil, err
			}

			// A record opening a day beyond the requested window means the
			// window is complete; everything already collected stays.
			if len(daysSeen) >= targetDays && !daysSeen[day] {
				return collected, nil
			}

			daysSeen[day] = true
			collected = append(collected, item)
		}

		if page.PaginationToken == "" {
			return nil, fmt.Errorf("malformed activities page: missing pagination token")
		}
		paginationToken = page.PaginationToken

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pageThrottle):
		}
	}

	return collected, nil
}
