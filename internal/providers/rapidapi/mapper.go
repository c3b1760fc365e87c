package rapidapi

import (
	"strconv"
	"strings"

	"github.com/pbertain/wnbapuff/internal/domain"
)

func mapEvent(ev eventResponse) domain.Game {
	game := domain.Game{
		ID:        providerName + "-" + supportedSport + "-" + ev.ID,
		Sport:     supportedSport,
		Provider:  providerName,
		StartTime: ev.Date,
		Status:    domain.StatusScheduled,
	}
	if len(ev.Competitions) == 0 {
		return game
	}

	comp := ev.Competitions[0]
	game.Status = mapStatus(comp.Status.Type)
	for _, c := range comp.Competitors {
		switch strings.ToLower(c.HomeAway) {
		case "home":
			game.HomeTeam = c.Team.DisplayName
			game.HomeScore = parseScore(c.Score, game.Status)
			game.HomeRecord = overallRecord(c.Records)
		case "away":
			game.AwayTeam = c.Team.DisplayName
			game.AwayScore = parseScore(c.Score, game.Status)
			game.AwayRecord = overallRecord(c.Records)
		}
	}
	return game
}

func mapStatus(st statusTypeResponse) domain.GameStatus {
	switch strings.ToLower(st.State) {
	case "post":
		if strings.EqualFold(st.Name, "STATUS_POSTPONED") {
			return domain.StatusPostponed
		}
		if strings.EqualFold(st.Name, "STATUS_CANCELED") {
			return domain.StatusCanceled
		}
		return domain.StatusFinal
	case "in":
		return domain.StatusInProgress
	default:
		return domain.StatusScheduled
	}
}

// parseScore treats an empty or unparsable score as absent, and drops the
// upstream's placeholder "0" on games that have not started.
func parseScore(raw string, status domain.GameStatus) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	if n == 0 && status == domain.StatusScheduled {
		return nil
	}
	return &n
}

func overallRecord(records []recordResponse) string {
	for _, r := range records {
		if strings.EqualFold(r.Type, "total") {
			return r.Summary
		}
	}
	if len(records) > 0 {
		return records[0].Summary
	}
	return ""
}

func mapStandings(container standingsContainer) []domain.StandingsRow {
	rows := make([]domain.StandingsRow, 0)
	for _, conf := range container.Children {
		for _, entry := range conf.Standings.Entries {
			row := domain.StandingsRow{
				Team:         entry.Team.DisplayName,
				Abbreviation: entry.Team.Abbreviation,
				Conference:   conferenceLabel(conf.Name),
			}
			for _, stat := range entry.Stats {
				switch strings.ToLower(stat.Name) {
				case "wins":
					row.Wins = int(stat.Value)
				case "losses":
					row.Losses = int(stat.Value)
				case "gamesbehind":
					row.GamesBehind = stat.Value
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func conferenceLabel(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), " Conference")
}
