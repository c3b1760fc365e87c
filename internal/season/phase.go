package season

// Phase labels a named segment of a sport's season, or one of the sentinel
// classifications produced when a date falls outside every defined interval.
type Phase string

const (
	PhasePreSeason      Phase = "pre-season"
	PhaseRegularSeason  Phase = "regular-season"
	PhaseMidSeasonEvent Phase = "mid-season-event"
	PhaseAllStarBreak   Phase = "all-star-break"
	PhasePlayoffs       Phase = "playoffs"
	PhaseOffseason      Phase = "offseason"

	// Sentinels. Never valid as interval labels; only ever computed.
	PhaseBeforeSeason  Phase = "before-season"
	PhaseAfterSeason   Phase = "after-season"
	PhaseBetweenPhases Phase = "between-phases"
)

var realPhases = map[Phase]struct{}{
	PhasePreSeason:      {},
	PhaseRegularSeason:  {},
	PhaseMidSeasonEvent: {},
	PhaseAllStarBreak:   {},
	PhasePlayoffs:       {},
	PhaseOffseason:      {},
}

// String returns the phase label.
func (p Phase) String() string {
	return string(p)
}

// IsSentinel reports whether the phase is a computed classification rather
// than a defined interval label.
func (p Phase) IsSentinel() bool {
	switch p {
	case PhaseBeforeSeason, PhaseAfterSeason, PhaseBetweenPhases:
		return true
	}
	return false
}

// ValidLabel reports whether the phase may label a configured interval.
func (p Phase) ValidLabel() bool {
	_, ok := realPhases[p]
	return ok
}
