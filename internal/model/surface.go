package model

// Every leaf value below is a probability expressed as a percentage in
// [0, 100]. Values inside one market are reported independently by the oracle
// and are NOT renormalized here, even when a logical partition does not sum
// to 100.

// WinnerOdds is the 1X2 match-winner market.
type WinnerOdds struct {
	HomeWin float64 `json:"homeWin"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"awayWin"`
}

// OverUnder is a two-way over/under market at a fixed line.
type OverUnder struct {
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}

// BTTS is the both-teams-to-score market.
type BTTS struct {
	Yes float64 `json:"yes"`
	No  float64 `json:"no"`
}

// DoubleChance covers the three two-outcome combinations.
type DoubleChance struct {
	HomeOrDraw float64 `json:"homeOrDraw"`
	AwayOrDraw float64 `json:"awayOrDraw"`
	HomeOrAway float64 `json:"homeOrAway"`
}

// DrawNoBet is the 1X2 market with the draw voided.
type DrawNoBet struct {
	HomeWin float64 `json:"homeWin"`
	AwayWin float64 `json:"awayWin"`
}

// GoalLines carries the secondary total-goals lines (1.5 and 3.5).
type GoalLines struct {
	Over15  float64 `json:"over15"`
	Under15 float64 `json:"under15"`
	Over35  float64 `json:"over35"`
	Under35 float64 `json:"under35"`
}

// ResultAndOver combines match result with the 2.5-goal line.
type ResultAndOver struct {
	HomeAndOver  float64 `json:"homeAndOver"`
	HomeAndUnder float64 `json:"homeAndUnder"`
	AwayAndOver  float64 `json:"awayAndOver"`
	AwayAndUnder float64 `json:"awayAndUnder"`
}

// AsianHandicap carries the -1.5/+1.5 handicap pair.
type AsianHandicap struct {
	HomeMinus15 float64 `json:"homeMinus15"`
	AwayPlus15  float64 `json:"awayPlus15"`
}

// ScoreLine is one entry of the ranked correct-score list.
type ScoreLine struct {
	Score       string  `json:"score"`
	Probability float64 `json:"probability"`
}

// FirstToScore is the first-team-to-score market, including no goals at all.
type FirstToScore struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
	None float64 `json:"none"`
}

// HalfTimeFullTime is the 3x3 half-time/full-time grid. Field order is the
// market's declared enumeration order, which tie-breaks the bingo slip.
type HalfTimeFullTime struct {
	HomeHome float64 `json:"homeHome"`
	HomeDraw float64 `json:"homeDraw"`
	HomeAway float64 `json:"homeAway"`
	DrawHome float64 `json:"drawHome"`
	DrawDraw float64 `json:"drawDraw"`
	DrawAway float64 `json:"drawAway"`
	AwayHome float64 `json:"awayHome"`
	AwayDraw float64 `json:"awayDraw"`
	AwayAway float64 `json:"awayAway"`
}

// PlayerProp names the single player the oracle considers most likely for a
// player-level market.
type PlayerProp struct {
	PlayerName  string  `json:"playerName"`
	Probability float64 `json:"probability"`
}

// PlayerProps groups the optional player-level entries. Each entry is
// individually optional; a nil entry means no qualifying player.
type PlayerProps struct {
	ShotsOnTargetOver05 *PlayerProp `json:"shotsOnTargetOver05,omitempty"`
	ScoreAnytime        *PlayerProp `json:"scoreAnytime,omitempty"`
	AssistAnytime       *PlayerProp `json:"assistAnytime,omitempty"`
}

// ProbabilitySurface is the full decision-relevant payload for an upcoming
// match: every market the oracle is asked to price.
type ProbabilitySurface struct {
	MatchWinner        WinnerOdds       `json:"matchWinner"`
	OverUnder25        OverUnder        `json:"overUnder25"`
	BTTS               BTTS             `json:"btts"`
	DoubleChance       DoubleChance     `json:"doubleChance"`
	DrawNoBet          DrawNoBet        `json:"drawNoBet"`
	OverUnderGoals     GoalLines        `json:"overUnderGoals"`
	ResultAndOver25    ResultAndOver    `json:"resultAndOver25"`
	AsianHandicap      AsianHandicap    `json:"asianHandicap"`
	CorrectScore       []ScoreLine      `json:"correctScore"`
	FirstTeamToScore   FirstToScore     `json:"firstTeamToScore"`
	HTFT               HalfTimeFullTime `json:"htft"`
	CornersOverUnder95 OverUnder        `json:"cornersOverUnder95"`
	CardsOverUnder45   OverUnder        `json:"cardsOverUnder45"`
	PlayerProps        *PlayerProps     `json:"playerProps,omitempty"`
}
