package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/susu3304/ggclubstats/internal/chart"
	"github.com/susu3304/ggclubstats/internal/config"
	"github.com/susu3304/ggclubstats/internal/geoguessr"
	"github.com/susu3304/ggclubstats/internal/notify"
	"github.com/susu3304/ggclubstats/internal/report"
	"github.com/susu3304/ggclubstats/internal/stats"
)

func main() {
	clubID := flag.String("club", "", "GeoGuessr club ID")
	days := flag.Int("days", 7, "number of distinct calendar days to cover")
	includeNewest := flag.Bool("include-newest", false, "include the newest (possibly partial) day in the average")
	inactivity := flag.Bool("inactivity", true, "also produce the inactivity report")
	flag.Parse()

	if *clubID == "" {
		log.Fatalf("-club is required")
	}
	if *days < 1 {
		log.Fatalf("-days must be at least 1, got %d", *days)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := geoguessr.NewClient(cfg.NCFA)
	if err != nil {
		log.Fatalf("Failed to create geoguessr client: %v", err)
	}

	ctx := context.Background()

	// Fetch everything up front; artifacts are only written after a fully
	// successful fetch.
	items, err := client.FetchActivityWindow(ctx, *clubID, *days)
	if err != nil {
		log.Fatalf("Failed to fetch activities: %v", err)
	}
	log.Printf("collected %d activities for club %s", len(items), *clubID)

	var members []geoguessr.Member
	if *inactivity {
		members, err = client.Members(ctx, *clubID)
		if err != nil {
			log.Fatalf("Failed to fetch members: %v", err)
		}
		log.Printf("roster has %d members", len(members))
	}

	dayTotals, err := stats.Aggregate(items)
	if err != nil {
		log.Fatalf("Failed to aggregate activities: %v", err)
	}

	policy := stats.ExcludeNewest
	if *includeNewest {
		policy = stats.IncludeNewest
	}
	avg, err := stats.Average(dayTotals, policy)
	if err != nil {
		log.Fatalf("Failed to compute average: %v", err)
	}
	log.Printf("average XP per day: %.1f", avg)

	if err := chart.RenderXPPerDay(dayTotals, avg, cfg.ChartPath); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}
	log.Printf("wrote chart to %s", cfg.ChartPath)

	var absences []report.DayAbsences
	if *inactivity {
		absences, err = report.Inactivity(items, members)
		if err != nil {
			log.Fatalf("Failed to build inactivity report: %v", err)
		}
		if err := report.WriteFile(absences, cfg.ReportPath); err != nil {
			log.Fatalf("Failed to write inactivity report: %v", err)
		}
		log.Printf("wrote inactivity report to %s", cfg.ReportPath)
	}

	if cfg.DiscordEnabled() {
		deliver(cfg, *clubID, avg, absences)
	}
}

// deliver posts the artifacts to Discord. Delivery failures are logged but
// never fatal; the files on disk are the primary output.
func deliver(cfg *config.Config, clubID string, avg float64, absences []report.DayAbsences) {
	discord, err := notify.NewDiscord(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		log.Printf("Discord delivery skipped: %v", err)
		return
	}
	defer discord.Close()

	caption := fmt.Sprintf("Club %s XP per day (average %.1f)", clubID, avg)
	if err := discord.SendChart(cfg.ChartPath, caption); err != nil {
		log.Printf("Failed to deliver chart: %v", err)
	}
	if len(absences) > 0 {
		if err := discord.SendReport(report.Render(absences)); err != nil {
			log.Printf("Failed to deliver inactivity report: %v", err)
		}
	}
}
