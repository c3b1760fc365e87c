// Package domain holds the canonical shapes the relay exposes, independent of
// any upstream provider's wire format.
package domain

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Game is the canonical game shape exposed by the relay for both scoreboard
// and schedule views.
type Game struct {
	ID         string     `json:"id"`
	Sport      string     `json:"sport"`
	Provider   string     `json:"provider"`
	AwayTeam   string     `json:"awayTeam"`
	HomeTeam   string     `json:"homeTeam"`
	AwayScore  *int       `json:"awayScore,omitempty"`
	HomeScore  *int       `json:"homeScore,omitempty"`
	Status     GameStatus `json:"status"`
	StartTime  string     `json:"startTime,omitempty"`
	AwayRecord string     `json:"awayRecord,omitempty"`
	HomeRecord string     `json:"homeRecord,omitempty"`
}

// StandingsRow is one team's line in the standings table.
type StandingsRow struct {
	Team         string  `json:"team"`
	Abbreviation string  `json:"abbreviation"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	GamesBehind  float64 `json:"gamesBehind"`
	Conference   string  `json:"conference"`
}

// SeasonContext carries the computed season values attached to every payload.
type SeasonContext struct {
	Sport       string `json:"sport"`
	SeasonYear  int    `json:"seasonYear"`
	SeasonName  string `json:"seasonName,omitempty"`
	Phase       string `json:"seasonPhase"`
	WeekNumber  *int   `json:"weekNumber,omitempty"`
	PrevPhase   string `json:"prevPhase,omitempty"`
	NextPhase   string `json:"nextPhase,omitempty"`
	DaysInto    int    `json:"daysIntoPhase"`
	DaysLeft    int    `json:"daysRemainingInPhase"`
}

// ScoresResponse is the payload for /api/v1/{sport}/scores.
type ScoresResponse struct {
	Date   string        `json:"date"`
	Games  []Game        `json:"games"`
	Season SeasonContext `json:"season"`
}

// ScheduleResponse is the payload for /api/v1/{sport}/schedule.
type ScheduleResponse struct {
	Date   string        `json:"date"`
	Games  []Game        `json:"games"`
	Season SeasonContext `json:"season"`
}

// StandingsResponse is the payload for /api/v1/{sport}/standings.
type StandingsResponse struct {
	Rows   []StandingsRow `json:"standings"`
	Group  string         `json:"group"`
	Season SeasonContext  `json:"season"`
}

// MilestoneResponse is the payload for /api/v1/{sport}/season/milestone.
type MilestoneResponse struct {
	Label     string        `json:"label,omitempty"`
	Date      string        `json:"date,omitempty"`
	DaysUntil int           `json:"daysUntil"`
	Remaining bool          `json:"remaining"`
	Season    SeasonContext `json:"season"`
}

// TransitionResponse is the payload for /api/v1/{sport}/season/transition.
type TransitionResponse struct {
	State         string        `json:"state"`
	ThresholdDays int           `json:"thresholdDays"`
	Season        SeasonContext `json:"season"`
}

// NewScoresResponse builds a ScoresResponse payload.
func NewScoresResponse(date string, games []Game, season SeasonContext) ScoresResponse {
	return ScoresResponse{Date: date, Games: games, Season: season}
}
