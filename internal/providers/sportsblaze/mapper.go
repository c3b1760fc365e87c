package sportsblaze

import (
	"strings"

	"github.com/pbertain/wnbapuff/internal/domain"
)

func mapGame(sport string, g gameResponse) domain.Game {
	return domain.Game{
		ID:         providerName + "-" + sport + "-" + g.ID,
		Sport:      sport,
		Provider:   providerName,
		AwayTeam:   g.AwayTeam.Name,
		HomeTeam:   g.HomeTeam.Name,
		AwayScore:  g.AwayScore,
		HomeScore:  g.HomeScore,
		Status:     mapStatus(g.Status),
		StartTime:  g.StartTime,
		AwayRecord: g.AwayTeam.Record,
		HomeRecord: g.HomeTeam.Record,
	}
}

func mapStandings(resp standingsResponse) []domain.StandingsRow {
	rows := make([]domain.StandingsRow, 0, len(resp.Standings))
	for _, r := range resp.Standings {
		rows = append(rows, domain.StandingsRow{
			Team:         r.Team,
			Abbreviation: r.Abbreviation,
			Wins:         r.Wins,
			Losses:       r.Losses,
			GamesBehind:  r.GamesBehind,
			Conference:   r.Conference,
		})
	}
	return rows
}

func mapStatus(status string) domain.GameStatus {
	switch strings.ToLower(status) {
	case "final", "ended":
		return domain.StatusFinal
	case "in progress", "live", "halftime", "end of period":
		return domain.StatusInProgress
	case "postponed":
		return domain.StatusPostponed
	case "canceled", "cancelled":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}
