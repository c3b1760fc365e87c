package rapidapi

// The legacy upstream relays ESPN-shaped payloads: a scoreboard is a list of
// events, each holding one competition with home/away competitors, and
// standings arrive as conference children with per-team stat entries.

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
}

type competitorResponse struct {
	HomeAway string           `json:"homeAway"`
	Score    string           `json:"score"`
	Team     teamResponse     `json:"team"`
	Records  []recordResponse `json:"records"`
}

type teamResponse struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type recordResponse struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type standingsContainer struct {
	Children []conferenceResponse `json:"children"`
}

type conferenceResponse struct {
	Name      string            `json:"name"`
	Standings standingsResponse `json:"standings"`
}

type standingsResponse struct {
	Entries []standingsEntry `json:"entries"`
}

type standingsEntry struct {
	Team  teamResponse `json:"team"`
	Stats []statEntry  `json:"stats"`
}

type statEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
