// Package engine derives bet slips from a validated probability surface.
// Both strategies are pure projections: no state, no errors, same input
// always yields the same output. Slips are recomputed on every call rather
// than cached, since the projection is cheap and the surface is immutable.
package engine

import "github.com/pitchside/pitchside-cli/internal/model"

// playerPropThreshold suppresses low-confidence player-level picks from the
// bingo slip. A fixed policy constant, not derived from the data.
const playerPropThreshold = 55

// Market labels used on the derived slips.
const (
	marketDoubleChance = "Double Chance"
	marketOverUnder25  = "Over/Under 2.5 Goals"
	marketBTTS         = "Both Teams To Score"
	marketMatchWinner  = "Match Winner"
	marketHTFT         = "Half Time / Full Time"
	marketScoreAnytime = "Player To Score Anytime"
	marketShotsOT      = "Player Shots On Target Over 0.5"
	marketCorners95    = "Corners Over/Under 9.5"
	marketCards45      = "Cards Over/Under 4.5"
)

type option struct {
	selection   string
	probability float64
}

// argmax picks the highest-probability option; on an exact tie the first
// declared option wins.
func argmax(opts []option) option {
	best := opts[0]
	for _, o := range opts[1:] {
		if o.probability > best.probability {
			best = o
		}
	}
	return best
}

func pick(market string, opts ...option) model.BetRecommendation {
	best := argmax(opts)
	return model.BetRecommendation{
		Market:      market,
		Selection:   best.selection,
		Probability: best.probability,
	}
}

// Conservative derives the three-pick slip biased toward the statistically
// safer side of each market.
func Conservative(p model.ProbabilitySurface) []model.BetRecommendation {
	return []model.BetRecommendation{
		pick(marketDoubleChance,
			option{"Home or Draw", p.DoubleChance.HomeOrDraw},
			option{"Away or Draw", p.DoubleChance.AwayOrDraw},
			option{"Home or Away", p.DoubleChance.HomeOrAway},
		),
		pick(marketOverUnder25,
			option{"Over 2.5", p.OverUnder25.Over},
			option{"Under 2.5", p.OverUnder25.Under},
		),
		pick(marketBTTS,
			option{"Yes", p.BTTS.Yes},
			option{"No", p.BTTS.No},
		),
	}
}

// Bingo derives the higher-risk slip: four market-level picks plus up to two
// player-level picks that only appear when their probability strictly exceeds
// the threshold.
func Bingo(p model.ProbabilitySurface, homeTeam, awayTeam string) []model.BetRecommendation {
	slip := make([]model.BetRecommendation, 0, 6)

	slip = append(slip, pick(marketMatchWinner,
		option{homeTeam, p.MatchWinner.HomeWin},
		option{"Draw", p.MatchWinner.Draw},
		option{awayTeam, p.MatchWinner.AwayWin},
	))

	slip = append(slip, pick(marketHTFT,
		option{"Home / Home", p.HTFT.HomeHome},
		option{"Home / Draw", p.HTFT.HomeDraw},
		option{"Home / Away", p.HTFT.HomeAway},
		option{"Draw / Home", p.HTFT.DrawHome},
		option{"Draw / Draw", p.HTFT.DrawDraw},
		option{"Draw / Away", p.HTFT.DrawAway},
		option{"Away / Home", p.HTFT.AwayHome},
		option{"Away / Draw", p.HTFT.AwayDraw},
		option{"Away / Away", p.HTFT.AwayAway},
	))

	if pp := p.PlayerProps; pp != nil {
		if sa := pp.ScoreAnytime; sa != nil && sa.Probability > playerPropThreshold {
			slip = append(slip, model.BetRecommendation{
				Market:      marketScoreAnytime,
				Selection:   sa.PlayerName,
				Probability: sa.Probability,
			})
		}
		if sot := pp.ShotsOnTargetOver05; sot != nil && sot.Probability > playerPropThreshold {
			slip = append(slip, model.BetRecommendation{
				Market:      marketShotsOT,
				Selection:   sot.PlayerName,
				Probability: sot.Probability,
			})
		}
	}

	slip = append(slip, pick(marketCorners95,
		option{"Over 9.5", p.CornersOverUnder95.Over},
		option{"Under 9.5", p.CornersOverUnder95.Under},
	))

	slip = append(slip, pick(marketCards45,
		option{"Over 4.5", p.CardsOverUnder45.Over},
		option{"Under 4.5", p.CardsOverUnder45.Under},
	))

	return slip
}
