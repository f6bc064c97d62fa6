package model

// MatchStatus tags which branch of an AnalysisRecord is populated.
type MatchStatus string

const (
	StatusUpcoming MatchStatus = "upcoming"
	StatusFinished MatchStatus = "finished"
)

// TeamForm holds one team's identity and recent-form snapshot. The averaged
// per-match statistics are only meaningful for upcoming matches; for finished
// matches the oracle returns name and form only.
type TeamForm struct {
	Name string `json:"name"`
	Form string `json:"form"` // hyphen-joined W/D/L tokens, e.g. "W-D-L-W-W"; may be shorter than 5

	AvgGoalsScored   float64 `json:"avgGoalsScored,omitempty"`
	AvgGoalsConceded float64 `json:"avgGoalsConceded,omitempty"`
	AvgCorners       float64 `json:"avgCorners,omitempty"`
	AvgYellowCards   float64 `json:"avgYellowCards,omitempty"`
	AvgRedCards      float64 `json:"avgRedCards,omitempty"`
	AvgFouls         float64 `json:"avgFouls,omitempty"`
	AvgShots         float64 `json:"avgShots,omitempty"`
}

// StatPair holds one match statistic for both sides.
type StatPair struct {
	TeamA float64 `json:"teamA"`
	TeamB float64 `json:"teamB"`
}

// MatchStatistics is the per-match counter block for a played game.
// Possession values are percentages; the oracle usually makes them sum near
// 100 but that is not enforced (upstream data is untrusted).
type MatchStatistics struct {
	ShotsOnTarget StatPair `json:"shotsOnTarget"`
	Possession    StatPair `json:"possession"`
	Corners       StatPair `json:"corners"`
	Fouls         StatPair `json:"fouls"`
	YellowCards   StatPair `json:"yellowCards"`
	RedCards      StatPair `json:"redCards"`
}

// HeadToHead summarizes the most recent meeting between the two teams.
// A nil Stats block means the last meeting is too old or too sparsely
// documented to carry statistics; that is a valid state, not an error.
type HeadToHead struct {
	Match string           `json:"match"`
	Stats *MatchStatistics `json:"stats,omitempty"`
}

// Citation records a provenance source surfaced by the oracle's search
// grounding alongside the generated analysis.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Fixture is one scheduled match returned by a fixture-list query.
type Fixture struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Time     string `json:"time,omitempty"` // HH:MM, competition reference timezone
}

// BetRecommendation is one derived pick: a market, the selected outcome, and
// the probability backing it. Derived fresh from a ProbabilitySurface on every
// call, never cached.
type BetRecommendation struct {
	Market      string  `json:"market"`
	Selection   string  `json:"selection"`
	Probability float64 `json:"probability"`
}
