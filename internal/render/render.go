// Package render formats payloads as plain text for the curl endpoints.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// Scores renders a scoreboard as aligned plain text, one game per line.
func Scores(resp domain.ScoresResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s scores for %s%s\n", sportLabel(resp.Season.Sport), resp.Date, seasonSuffix(resp.Season))

	if len(resp.Games) == 0 {
		b.WriteString("no games\n")
		return b.String()
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, g := range resp.Games {
		fmt.Fprintf(w, "%s\t%s\t@ %s\t%s\t%s\n",
			teamLabel(g.AwayTeam, g.AwayRecord), scoreLabel(g.AwayScore),
			teamLabel(g.HomeTeam, g.HomeRecord), scoreLabel(g.HomeScore),
			statusLabel(g))
	}
	w.Flush()
	return b.String()
}

// Schedule renders a slate as plain text, one game per line.
func Schedule(resp domain.ScheduleResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s schedule for %s%s\n", sportLabel(resp.Season.Sport), resp.Date, seasonSuffix(resp.Season))

	if len(resp.Games) == 0 {
		b.WriteString("no games\n")
		return b.String()
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, g := range resp.Games {
		fmt.Fprintf(w, "%s\t@ %s\t%s\t%s\n",
			teamLabel(g.AwayTeam, g.AwayRecord),
			teamLabel(g.HomeTeam, g.HomeRecord),
			g.StartTime,
			statusLabel(g))
	}
	w.Flush()
	return b.String()
}

// Standings renders the standings table as plain text grouped by conference.
func Standings(resp domain.StandingsResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s standings%s\n", sportLabel(resp.Season.Sport), seasonSuffix(resp.Season))

	if len(resp.Rows) == 0 {
		b.WriteString("no standings\n")
		return b.String()
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEAM\tW\tL\tGB\tCONF")
	for _, row := range resp.Rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", row.Team, row.Wins, row.Losses, gamesBehind(row.GamesBehind), row.Conference)
	}
	w.Flush()
	return b.String()
}

// Season renders the full season context, milestone, and transition state.
func Season(ctx domain.SeasonContext, milestone domain.MilestoneResponse, transition domain.TransitionResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d: %s", sportLabel(ctx.Sport), ctx.SeasonYear, ctx.Phase)
	if ctx.WeekNumber != nil {
		fmt.Fprintf(&b, ", week %d", *ctx.WeekNumber)
	}
	if ctx.Phase == "between-phases" && ctx.PrevPhase != "" && ctx.NextPhase != "" {
		fmt.Fprintf(&b, " (between %s and %s)", ctx.PrevPhase, ctx.NextPhase)
	} else if ctx.DaysInto > 0 || ctx.DaysLeft > 0 {
		fmt.Fprintf(&b, " (day %d, %d days left)", ctx.DaysInto+1, ctx.DaysLeft)
	}
	b.WriteString("\n")

	if milestone.Remaining {
		fmt.Fprintf(&b, "next milestone: %s on %s (%d days)\n", milestone.Label, milestone.Date, milestone.DaysUntil)
	} else {
		b.WriteString("next milestone: none this season\n")
	}
	fmt.Fprintf(&b, "transition: %s (threshold %d days)\n", transition.State, transition.ThresholdDays)
	return b.String()
}

// Help lists the curl endpoints.
func Help(sports []string) string {
	var b strings.Builder
	b.WriteString("endpoints:\n")
	b.WriteString("  /curl/help\n")
	b.WriteString("  /curl/scores?sport={sport}&date=YYYY-MM-DD\n")
	b.WriteString("  /curl/schedule?sport={sport}&date=YYYY-MM-DD\n")
	b.WriteString("  /curl/standings?sport={sport}\n")
	b.WriteString("  /curl/season?sport={sport}&date=YYYY-MM-DD\n")
	if len(sports) > 0 {
		fmt.Fprintf(&b, "sports: %s\n", strings.Join(sports, ", "))
	}
	return b.String()
}

func sportLabel(sport string) string {
	if sport == "" {
		return "unknown"
	}
	return strings.ToUpper(sport)
}

func seasonSuffix(ctx domain.SeasonContext) string {
	if ctx.Phase == "" {
		return ""
	}
	suffix := fmt.Sprintf(" [%s", ctx.Phase)
	if ctx.WeekNumber != nil {
		suffix += fmt.Sprintf(" week %d", *ctx.WeekNumber)
	}
	return suffix + "]"
}

func teamLabel(name, record string) string {
	if name == "" {
		name = "TBD"
	}
	if record == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, record)
}

func scoreLabel(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}

func statusLabel(g domain.Game) string {
	if g.Status == domain.StatusScheduled && g.StartTime != "" {
		return g.StartTime
	}
	return string(g.Status)
}

func gamesBehind(gb float64) string {
	if gb == 0 {
		return "-"
	}
	if gb == float64(int(gb)) {
		return fmt.Sprintf("%d", int(gb))
	}
	return fmt.Sprintf("%.1f", gb)
}
