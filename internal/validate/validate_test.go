package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/pitchside-cli/internal/extract"
	"github.com/pitchside/pitchside-cli/internal/model"
)

const upcomingPayload = `{
  "matchStatus": "upcoming",
  "teamA": {"name": "Flamengo", "form": "W-W-D-L-W", "avgGoalsScored": 1.8, "avgCorners": 5.5},
  "teamB": {"name": "Palmeiras", "form": "D-W-W-W-L", "avgGoalsScored": 1.5},
  "h2h": {"match": "Flamengo 2 - 1 Palmeiras (2025-11-02)"},
  "probabilities": {
    "matchWinner": {"homeWin": 45, "draw": 28, "awayWin": 27},
    "overUnder25": {"over": 58, "under": 42},
    "btts": {"yes": 61, "no": 39},
    "doubleChance": {"homeOrDraw": 73, "awayOrDraw": 55, "homeOrAway": 72},
    "drawNoBet": {"homeWin": 62, "awayWin": 38},
    "overUnderGoals": {"over15": 81, "under15": 19, "over35": 31, "under35": 69},
    "resultAndOver25": {"homeAndOver": 30, "homeAndUnder": 15, "awayAndOver": 17, "awayAndUnder": 10},
    "asianHandicap": {"homeMinus15": 22, "awayPlus15": 78},
    "correctScore": [{"score": "2-1", "probability": 12}, {"score": "1-1", "probability": 11}],
    "firstTeamToScore": {"home": 52, "away": 40, "none": 8},
    "htft": {"homeHome": 32, "homeDraw": 5, "homeAway": 2, "drawHome": 14, "drawDraw": 12, "drawAway": 9, "awayHome": 3, "awayDraw": 6, "awayAway": 17},
    "cornersOverUnder95": {"over": 55, "under": 45},
    "cardsOverUnder45": {"over": 48, "under": 52},
    "playerProps": {
      "scoreAnytime": {"playerName": "Pedro", "probability": 58}
    }
  }
}`

const finishedPayload = `{
  "matchStatus": "finished",
  "finalScore": "Flamengo 3 - 1 Palmeiras",
  "teamA": {"name": "Flamengo", "form": "W-W-D-L-W"},
  "teamB": {"name": "Palmeiras", "form": "D-W-W-W-L"},
  "h2h": {"match": "Flamengo 2 - 1 Palmeiras (2025-11-02)"},
  "matchStats": {
    "shotsOnTarget": {"teamA": 7, "teamB": 3},
    "possession": {"teamA": 56, "teamB": 44},
    "corners": {"teamA": 6, "teamB": 4},
    "fouls": {"teamA": 11, "teamB": 14},
    "yellowCards": {"teamA": 2, "teamB": 3},
    "redCards": {"teamA": 0, "teamB": 1}
  }
}`

func parse(t *testing.T, payload string) *extract.RawRecord {
	t.Helper()
	raw, err := extract.ParseAnalysis(payload)
	require.NoError(t, err)
	return raw
}

// mutate unmarshals the payload into a generic map, applies fn, and
// re-parses, so tests can drop or rewrite individual keys.
func mutate(t *testing.T, payload string, fn func(m map[string]any)) *extract.RawRecord {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	fn(m)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return parse(t, string(b))
}

func TestRecord_ValidUpcoming(t *testing.T) {
	record, err := Record(parse(t, upcomingPayload))
	require.NoError(t, err)

	assert.Equal(t, model.StatusUpcoming, record.Status)
	assert.Equal(t, "Flamengo", record.TeamA.Name)
	assert.Equal(t, 1.8, record.TeamA.AvgGoalsScored)

	detail, ok := record.Upcoming()
	require.True(t, ok)
	assert.Equal(t, 45.0, detail.Probabilities.MatchWinner.HomeWin)
	assert.Len(t, detail.Probabilities.CorrectScore, 2)

	require.NotNil(t, detail.Probabilities.PlayerProps)
	require.NotNil(t, detail.Probabilities.PlayerProps.ScoreAnytime)
	assert.Nil(t, detail.Probabilities.PlayerProps.ShotsOnTargetOver05,
		"individually absent player prop stays nil")

	_, ok = record.Finished()
	assert.False(t, ok, "only the status-selected branch is populated")
}

func TestRecord_ValidFinished(t *testing.T) {
	record, err := Record(parse(t, finishedPayload))
	require.NoError(t, err)

	assert.Equal(t, model.StatusFinished, record.Status)
	detail, ok := record.Finished()
	require.True(t, ok)
	assert.Equal(t, "Flamengo 3 - 1 Palmeiras", detail.FinalScore)
	assert.Equal(t, 56.0, detail.Stats.Possession.TeamA)

	assert.Nil(t, record.H2H.Stats, "h2h stats may be absent even for finished matches")

	_, ok = record.Upcoming()
	assert.False(t, ok)
}

func TestRecord_UnknownStatus(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		m["matchStatus"] = "postponed"
	})
	_, err := Record(raw)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestRecord_MissingStatus(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		delete(m, "matchStatus")
	})
	_, err := Record(raw)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestRecord_StatusCaseInsensitive(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		m["matchStatus"] = "Upcoming"
	})
	record, err := Record(raw)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUpcoming, record.Status)
}

func TestRecord_MissingTeamIdentity(t *testing.T) {
	for _, key := range []string{"teamA", "teamB"} {
		raw := mutate(t, upcomingPayload, func(m map[string]any) {
			delete(m, key)
		})
		_, err := Record(raw)
		assert.ErrorIs(t, err, ErrIncompleteRecord, key)
	}

	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		m["teamA"].(map[string]any)["name"] = "  "
	})
	_, err := Record(raw)
	assert.ErrorIs(t, err, ErrIncompleteRecord, "blank name")
}

func TestRecord_UpcomingWithoutProbabilities(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		delete(m, "probabilities")
	})
	_, err := Record(raw)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestRecord_UpcomingMissingMarketIsRejected(t *testing.T) {
	markets := []string{
		"matchWinner", "overUnder25", "btts", "doubleChance", "drawNoBet",
		"overUnderGoals", "resultAndOver25", "asianHandicap", "correctScore",
		"firstTeamToScore", "htft", "cornersOverUnder95", "cardsOverUnder45",
	}
	for _, market := range markets {
		raw := mutate(t, upcomingPayload, func(m map[string]any) {
			delete(m["probabilities"].(map[string]any), market)
		})
		_, err := Record(raw)
		require.ErrorIs(t, err, ErrIncompleteRecord, market)
		assert.True(t, strings.Contains(err.Error(), market), "error names the missing market %q", market)
	}
}

func TestRecord_PlayerPropsOptional(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		delete(m["probabilities"].(map[string]any), "playerProps")
	})
	record, err := Record(raw)
	require.NoError(t, err)

	detail, ok := record.Upcoming()
	require.True(t, ok)
	assert.Nil(t, detail.Probabilities.PlayerProps)
}

func TestRecord_MissingLeafCoercesToZero(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		m["probabilities"].(map[string]any)["btts"] = map[string]any{"yes": "N/A"}
	})
	record, err := Record(raw)
	require.NoError(t, err, "present market with bad leaves is accepted")

	detail, ok := record.Upcoming()
	require.True(t, ok)
	assert.Zero(t, detail.Probabilities.BTTS.Yes)
	assert.Zero(t, detail.Probabilities.BTTS.No)
}

func TestRecord_FinishedWithoutFinalScore(t *testing.T) {
	raw := mutate(t, finishedPayload, func(m map[string]any) {
		delete(m, "finalScore")
	})
	_, err := Record(raw)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestRecord_FinishedWithoutMatchStats(t *testing.T) {
	raw := mutate(t, finishedPayload, func(m map[string]any) {
		delete(m, "matchStats")
	})
	_, err := Record(raw)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestRecord_H2HStatsCarriedWhenPresent(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		m["h2h"].(map[string]any)["stats"] = map[string]any{
			"possession": map[string]any{"teamA": 60, "teamB": 40},
		}
	})
	record, err := Record(raw)
	require.NoError(t, err)
	require.NotNil(t, record.H2H.Stats)
	assert.Equal(t, 60.0, record.H2H.Stats.Possession.TeamA)
}

func TestRecord_MissingH2HTolerated(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		delete(m, "h2h")
	})
	record, err := Record(raw)
	require.NoError(t, err)
	assert.Empty(t, record.H2H.Match)
}

func TestRecord_ShortFormStringTolerated(t *testing.T) {
	raw := mutate(t, upcomingPayload, func(m map[string]any) {
		m["teamA"].(map[string]any)["form"] = "W-D"
	})
	record, err := Record(raw)
	require.NoError(t, err)
	assert.Equal(t, "W-D", record.TeamA.Form)
}
