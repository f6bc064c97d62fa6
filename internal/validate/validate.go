// Package validate performs the semantic checks that turn a syntactically
// parsed oracle payload into a usable AnalysisRecord. Extraction and
// validation are split on purpose: a payload can be valid JSON yet
// semantically incomplete, and the two failure classes are tested
// independently.
package validate

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/pitchside/pitchside-cli/internal/extract"
	"github.com/pitchside/pitchside-cli/internal/model"
)

var (
	// ErrUnknownStatus means matchStatus was missing or not a known variant.
	ErrUnknownStatus = eris.New("validate: unknown match status")

	// ErrIncompleteRecord means a field required for the record's status
	// variant was absent.
	ErrIncompleteRecord = eris.New("validate: incomplete record")
)

// Record checks a raw payload against the status-dependent schema and builds
// the immutable AnalysisRecord. Missing leaf percentages have already been
// coerced to zero during decoding; missing market or stats objects fail here.
func Record(raw *extract.RawRecord) (*model.AnalysisRecord, error) {
	var status model.MatchStatus
	switch strings.ToLower(strings.TrimSpace(raw.MatchStatus)) {
	case string(model.StatusUpcoming):
		status = model.StatusUpcoming
	case string(model.StatusFinished):
		status = model.StatusFinished
	default:
		return nil, eris.Wrapf(ErrUnknownStatus, "got %q", raw.MatchStatus)
	}

	if raw.TeamA == nil || strings.TrimSpace(raw.TeamA.Name) == "" ||
		raw.TeamB == nil || strings.TrimSpace(raw.TeamB.Name) == "" {
		return nil, eris.Wrap(ErrIncompleteRecord, "missing team identity")
	}

	teamA := teamForm(raw.TeamA)
	teamB := teamForm(raw.TeamB)
	h2h := headToHead(raw.H2H)

	switch status {
	case model.StatusFinished:
		if strings.TrimSpace(raw.FinalScore) == "" {
			return nil, eris.Wrap(ErrIncompleteRecord, "finished match without finalScore")
		}
		if raw.MatchStats == nil {
			return nil, eris.Wrap(ErrIncompleteRecord, "finished match without matchStats")
		}
		return model.NewFinishedRecord(teamA, teamB, h2h, strings.TrimSpace(raw.FinalScore), matchStats(raw.MatchStats)), nil

	default:
		surface, err := probabilitySurface(raw.Probabilities)
		if err != nil {
			return nil, err
		}
		return model.NewUpcomingRecord(teamA, teamB, h2h, *surface), nil
	}
}

// probabilitySurface rejects any absent top-level market and converts the
// rest. playerProps and its entries are individually optional.
func probabilitySurface(raw *extract.RawProbabilities) (*model.ProbabilitySurface, error) {
	if raw == nil {
		return nil, eris.Wrap(ErrIncompleteRecord, "upcoming match without probabilities")
	}

	missing := ""
	switch {
	case raw.MatchWinner == nil:
		missing = "matchWinner"
	case raw.OverUnder25 == nil:
		missing = "overUnder25"
	case raw.BTTS == nil:
		missing = "btts"
	case raw.DoubleChance == nil:
		missing = "doubleChance"
	case raw.DrawNoBet == nil:
		missing = "drawNoBet"
	case raw.OverUnderGoals == nil:
		missing = "overUnderGoals"
	case raw.ResultAndOver25 == nil:
		missing = "resultAndOver25"
	case raw.AsianHandicap == nil:
		missing = "asianHandicap"
	case raw.CorrectScore == nil:
		missing = "correctScore"
	case raw.FirstTeamToScore == nil:
		missing = "firstTeamToScore"
	case raw.HTFT == nil:
		missing = "htft"
	case raw.CornersOverUnder95 == nil:
		missing = "cornersOverUnder95"
	case raw.CardsOverUnder45 == nil:
		missing = "cardsOverUnder45"
	}
	if missing != "" {
		return nil, eris.Wrapf(ErrIncompleteRecord, "missing market %q", missing)
	}

	scores := make([]model.ScoreLine, 0, len(raw.CorrectScore))
	for _, s := range raw.CorrectScore {
		scores = append(scores, model.ScoreLine{Score: s.Score, Probability: float64(s.Probability)})
	}

	surface := &model.ProbabilitySurface{
		MatchWinner: model.WinnerOdds{
			HomeWin: float64(raw.MatchWinner.HomeWin),
			Draw:    float64(raw.MatchWinner.Draw),
			AwayWin: float64(raw.MatchWinner.AwayWin),
		},
		OverUnder25: overUnder(raw.OverUnder25),
		BTTS: model.BTTS{
			Yes: float64(raw.BTTS.Yes),
			No:  float64(raw.BTTS.No),
		},
		DoubleChance: model.DoubleChance{
			HomeOrDraw: float64(raw.DoubleChance.HomeOrDraw),
			AwayOrDraw: float64(raw.DoubleChance.AwayOrDraw),
			HomeOrAway: float64(raw.DoubleChance.HomeOrAway),
		},
		DrawNoBet: model.DrawNoBet{
			HomeWin: float64(raw.DrawNoBet.HomeWin),
			AwayWin: float64(raw.DrawNoBet.AwayWin),
		},
		OverUnderGoals: model.GoalLines{
			Over15:  float64(raw.OverUnderGoals.Over15),
			Under15: float64(raw.OverUnderGoals.Under15),
			Over35:  float64(raw.OverUnderGoals.Over35),
			Under35: float64(raw.OverUnderGoals.Under35),
		},
		ResultAndOver25: model.ResultAndOver{
			HomeAndOver:  float64(raw.ResultAndOver25.HomeAndOver),
			HomeAndUnder: float64(raw.ResultAndOver25.HomeAndUnder),
			AwayAndOver:  float64(raw.ResultAndOver25.AwayAndOver),
			AwayAndUnder: float64(raw.ResultAndOver25.AwayAndUnder),
		},
		AsianHandicap: model.AsianHandicap{
			HomeMinus15: float64(raw.AsianHandicap.HomeMinus15),
			AwayPlus15:  float64(raw.AsianHandicap.AwayPlus15),
		},
		CorrectScore: scores,
		FirstTeamToScore: model.FirstToScore{
			Home: float64(raw.FirstTeamToScore.Home),
			Away: float64(raw.FirstTeamToScore.Away),
			None: float64(raw.FirstTeamToScore.None),
		},
		HTFT: model.HalfTimeFullTime{
			HomeHome: float64(raw.HTFT.HomeHome),
			HomeDraw: float64(raw.HTFT.HomeDraw),
			HomeAway: float64(raw.HTFT.HomeAway),
			DrawHome: float64(raw.HTFT.DrawHome),
			DrawDraw: float64(raw.HTFT.DrawDraw),
			DrawAway: float64(raw.HTFT.DrawAway),
			AwayHome: float64(raw.HTFT.AwayHome),
			AwayDraw: float64(raw.HTFT.AwayDraw),
			AwayAway: float64(raw.HTFT.AwayAway),
		},
		CornersOverUnder95: overUnder(raw.CornersOverUnder95),
		CardsOverUnder45:   overUnder(raw.CardsOverUnder45),
		PlayerProps:        playerProps(raw.PlayerProps),
	}
	return surface, nil
}

func overUnder(raw *extract.RawOverUnder) model.OverUnder {
	return model.OverUnder{Over: float64(raw.Over), Under: float64(raw.Under)}
}

func playerProps(raw *extract.RawPlayerProps) *model.PlayerProps {
	if raw == nil {
		return nil
	}
	return &model.PlayerProps{
		ShotsOnTargetOver05: playerProp(raw.ShotsOnTargetOver05),
		ScoreAnytime:        playerProp(raw.ScoreAnytime),
		AssistAnytime:       playerProp(raw.AssistAnytime),
	}
}

func playerProp(raw *extract.RawPlayerProp) *model.PlayerProp {
	if raw == nil {
		return nil
	}
	return &model.PlayerProp{
		PlayerName:  strings.TrimSpace(raw.PlayerName),
		Probability: float64(raw.Probability),
	}
}

func teamForm(raw *extract.RawTeam) model.TeamForm {
	return model.TeamForm{
		Name:             strings.TrimSpace(raw.Name),
		Form:             strings.TrimSpace(raw.Form),
		AvgGoalsScored:   float64(raw.AvgGoalsScored),
		AvgGoalsConceded: float64(raw.AvgGoalsConceded),
		AvgCorners:       float64(raw.AvgCorners),
		AvgYellowCards:   float64(raw.AvgYellowCards),
		AvgRedCards:      float64(raw.AvgRedCards),
		AvgFouls:         float64(raw.AvgFouls),
		AvgShots:         float64(raw.AvgShots),
	}
}

func headToHead(raw *extract.RawH2H) model.HeadToHead {
	if raw == nil {
		// Absent h2h is tolerated: it reads as "no data".
		return model.HeadToHead{}
	}
	h := model.HeadToHead{Match: strings.TrimSpace(raw.Match)}
	if raw.Stats != nil {
		s := matchStats(raw.Stats)
		h.Stats = &s
	}
	return h
}

func matchStats(raw *extract.RawMatchStats) model.MatchStatistics {
	return model.MatchStatistics{
		ShotsOnTarget: statPair(raw.ShotsOnTarget),
		Possession:    statPair(raw.Possession),
		Corners:       statPair(raw.Corners),
		Fouls:         statPair(raw.Fouls),
		YellowCards:   statPair(raw.YellowCards),
		RedCards:      statPair(raw.RedCards),
	}
}

func statPair(raw extract.RawPair) model.StatPair {
	return model.StatPair{TeamA: float64(raw.TeamA), TeamB: float64(raw.TeamB)}
}
