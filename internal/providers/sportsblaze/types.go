package sportsblaze

type gamesResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"`
	StartTime string       `json:"start_time"`
	Status    string       `json:"status"`
	HomeTeam  teamResponse `json:"home_team"`
	AwayTeam  teamResponse `json:"away_team"`
	HomeScore *int         `json:"home_score"`
	AwayScore *int         `json:"away_score"`
	Season    int          `json:"season"`
}

type teamResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Record       string `json:"record"`
	Conference   string `json:"conference"`
}

type standingsResponse struct {
	Season    int                 `json:"season"`
	Standings []standingsEntryRow `json:"standings"`
}

type standingsEntryRow struct {
	Team         string  `json:"team"`
	Abbreviation string  `json:"abbreviation"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	GamesBehind  float64 `json:"games_behind"`
	Conference   string  `json:"conference"`
}
