package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/susu3304/ggclubstats/internal/geoguessr"
)

// NoneInactiveMarker is emitted for a day on which every roster member was
// active, so readers can tell "everyone active" apart from "no data".
const NoneInactiveMarker = "none inactive"

// DayAbsences lists the roster members with no recorded activity on Date.
// An empty Absent list means everyone was active that day.
type DayAbsences struct {
	Date   string
	Absent []string
}

// Inactivity cross-references per-day active-user sets against the full
// roster. Labels are the member nicks, falling back to the raw user id for
// ids the roster no longer knows, sorted lexicographically.
func Inactivity(items []geoguessr.ActivityItem, members []geoguessr.Member) ([]DayAbsences, error) {
	nickByID := make(map[string]string, len(members))
	for _, m := range members {
		nickByID[m.UserID] = m.Nick
	}

	activeByDay := make(map[string]map[string]bool)
	for _, item := range items {
		day, err := item.DayOf()
		if err != nil {
			return nil, err
		}
		if activeByDay[day] == nil {
			activeByDay[day] = make(map[string]bool)
		}
		activeByDay[day][item.UserID] = true
	}

	days := make([]string, 0, len(activeByDay))
	for day := range activeByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DayAbsences, 0, len(days))
	for _, day := range days {
		active := activeByDay[day]
		var absent []string
		for _, m := range members {
			if !active[m.UserID] {
				absent = append(absent, label(m.UserID, nickByID))
			}
		}
		sort.Strings(absent)
		result = append(result, DayAbsences{Date: day, Absent: absent})
	}
	return result, nil
}

// label resolves a user id to its display nick, falling back to the raw id
// when the roster has no usable nick for it.
func label(userID string, nickByID map[string]string) string {
	if nick := nickByID[userID]; nick != "" {
		return nick
	}
	return userID
}

// Render formats the inactivity report as plain text: one block per date in
// ascending order, blocks separated by a blank line.
func Render(days []DayAbsences) string {
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(day.Date + "\n")
		if len(day.Absent) == 0 {
			b.WriteString(NoneInactiveMarker + "\n")
			continue
		}
		for _, name := range day.Absent {
			b.WriteString("- " + name + "\n")
		}
	}
	return b.String()
}

// WriteFile renders the report and writes it to path.
func WriteFile(days []DayAbsences, path string) error {
	if err := os.WriteFile(path, []byte(Render(days)), 0o644); err != nil {
		return fmt.Errorf("failed to write inactivity report: %w", err)
	}
	return nil
}
