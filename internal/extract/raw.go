package extract

import (
	"strconv"
	"strings"
)

// Percent is a probability percentage decoded leniently: JSON numbers and
// numeric strings parse normally, while null, missing, or unparseable values
// decode to zero instead of failing the whole record. Rejecting happens one
// level up, when an entire market object is absent.
type Percent float64

// UnmarshalJSON never returns an error; garbage decodes as zero.
func (p *Percent) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Percent(f)
	return nil
}

// RawTeam is the wire shape of one team's form block.
type RawTeam struct {
	Name string `json:"name"`
	Form string `json:"form"`

	AvgGoalsScored   Percent `json:"avgGoalsScored"`
	AvgGoalsConceded Percent `json:"avgGoalsConceded"`
	AvgCorners       Percent `json:"avgCorners"`
	AvgYellowCards   Percent `json:"avgYellowCards"`
	AvgRedCards      Percent `json:"avgRedCards"`
	AvgFouls         Percent `json:"avgFouls"`
	AvgShots         Percent `json:"avgShots"`
}

// RawPair is the wire shape of one teamA/teamB counter pair.
type RawPair struct {
	TeamA Percent `json:"teamA"`
	TeamB Percent `json:"teamB"`
}

// RawMatchStats is the wire shape of a played match's counter block.
type RawMatchStats struct {
	ShotsOnTarget RawPair `json:"shotsOnTarget"`
	Possession    RawPair `json:"possession"`
	Corners       RawPair `json:"corners"`
	Fouls         RawPair `json:"fouls"`
	YellowCards   RawPair `json:"yellowCards"`
	RedCards      RawPair `json:"redCards"`
}

// RawH2H is the wire shape of the head-to-head block.
type RawH2H struct {
	Match string         `json:"match"`
	Stats *RawMatchStats `json:"stats"`
}

// RawPlayerProp is the wire shape of one player-level entry.
type RawPlayerProp struct {
	PlayerName  string  `json:"playerName"`
	Probability Percent `json:"probability"`
}

// RawPlayerProps groups the optional player-level entries.
type RawPlayerProps struct {
	ShotsOnTargetOver05 *RawPlayerProp `json:"shotsOnTargetOver05"`
	ScoreAnytime        *RawPlayerProp `json:"scoreAnytime"`
	AssistAnytime       *RawPlayerProp `json:"assistAnytime"`
}

// RawWinner is the wire 1X2 market.
type RawWinner struct {
	HomeWin Percent `json:"homeWin"`
	Draw    Percent `json:"draw"`
	AwayWin Percent `json:"awayWin"`
}

// RawOverUnder is a wire two-way over/under market.
type RawOverUnder struct {
	Over  Percent `json:"over"`
	Under Percent `json:"under"`
}

// RawBTTS is the wire both-teams-to-score market.
type RawBTTS struct {
	Yes Percent `json:"yes"`
	No  Percent `json:"no"`
}

// RawDoubleChance is the wire double-chance market.
type RawDoubleChance struct {
	HomeOrDraw Percent `json:"homeOrDraw"`
	AwayOrDraw Percent `json:"awayOrDraw"`
	HomeOrAway Percent `json:"homeOrAway"`
}

// RawDrawNoBet is the wire draw-no-bet market.
type RawDrawNoBet struct {
	HomeWin Percent `json:"homeWin"`
	AwayWin Percent `json:"awayWin"`
}

// RawGoalLines is the wire secondary goal-lines market.
type RawGoalLines struct {
	Over15  Percent `json:"over15"`
	Under15 Percent `json:"under15"`
	Over35  Percent `json:"over35"`
	Under35 Percent `json:"under35"`
}

// RawResultAndOver is the wire result-plus-total market.
type RawResultAndOver struct {
	HomeAndOver  Percent `json:"homeAndOver"`
	HomeAndUnder Percent `json:"homeAndUnder"`
	AwayAndOver  Percent `json:"awayAndOver"`
	AwayAndUnder Percent `json:"awayAndUnder"`
}

// RawAsianHandicap is the wire handicap market.
type RawAsianHandicap struct {
	HomeMinus15 Percent `json:"homeMinus15"`
	AwayPlus15  Percent `json:"awayPlus15"`
}

// RawScoreLine is one wire correct-score entry.
type RawScoreLine struct {
	Score       string  `json:"score"`
	Probability Percent `json:"probability"`
}

// RawFirstToScore is the wire first-team-to-score market.
type RawFirstToScore struct {
	Home Percent `json:"home"`
	Away Percent `json:"away"`
	None Percent `json:"none"`
}

// RawHTFT is the wire half-time/full-time grid.
type RawHTFT struct {
	HomeHome Percent `json:"homeHome"`
	HomeDraw Percent `json:"homeDraw"`
	HomeAway Percent `json:"homeAway"`
	DrawHome Percent `json:"drawHome"`
	DrawDraw Percent `json:"drawDraw"`
	DrawAway Percent `json:"drawAway"`
	AwayHome Percent `json:"awayHome"`
	AwayDraw Percent `json:"awayDraw"`
	AwayAway Percent `json:"awayAway"`
}

// RawProbabilities is the wire probability surface. Every market is a pointer
// so the validator can tell an absent market (reject) apart from a present
// market with zeroed leaves (accept).
type RawProbabilities struct {
	MatchWinner        *RawWinner        `json:"matchWinner"`
	OverUnder25        *RawOverUnder     `json:"overUnder25"`
	BTTS               *RawBTTS          `json:"btts"`
	DoubleChance       *RawDoubleChance  `json:"doubleChance"`
	DrawNoBet          *RawDrawNoBet     `json:"drawNoBet"`
	OverUnderGoals     *RawGoalLines     `json:"overUnderGoals"`
	ResultAndOver25    *RawResultAndOver `json:"resultAndOver25"`
	AsianHandicap      *RawAsianHandicap `json:"asianHandicap"`
	CorrectScore       []RawScoreLine    `json:"correctScore"`
	FirstTeamToScore   *RawFirstToScore  `json:"firstTeamToScore"`
	HTFT               *RawHTFT          `json:"htft"`
	CornersOverUnder95 *RawOverUnder     `json:"cornersOverUnder95"`
	CardsOverUnder45   *RawOverUnder     `json:"cardsOverUnder45"`
	PlayerProps        *RawPlayerProps   `json:"playerProps"`
}

// RawRecord is the syntactically-parsed but not yet validated analysis
// payload. Pointer fields distinguish absent blocks from zero-valued ones.
type RawRecord struct {
	MatchStatus   string            `json:"matchStatus"`
	TeamA         *RawTeam          `json:"teamA"`
	TeamB         *RawTeam          `json:"teamB"`
	H2H           *RawH2H           `json:"h2h"`
	FinalScore    string            `json:"finalScore"`
	MatchStats    *RawMatchStats    `json:"matchStats"`
	Probabilities *RawProbabilities `json:"probabilities"`
}
