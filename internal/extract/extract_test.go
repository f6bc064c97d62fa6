package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixtures_CleanArray(t *testing.T) {
	text := `[{"homeTeam": "Arsenal", "awayTeam": "Chelsea", "time": "16:30"}]`

	fixtures, err := ParseFixtures(text)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, "Arsenal", fixtures[0].HomeTeam)
	assert.Equal(t, "Chelsea", fixtures[0].AwayTeam)
	assert.Equal(t, "16:30", fixtures[0].Time)
}

func TestParseFixtures_EmptyArrayIsValid(t *testing.T) {
	fixtures, err := ParseFixtures("[]")
	require.NoError(t, err)
	require.NotNil(t, fixtures)
	assert.Empty(t, fixtures, "zero fixtures is a valid business outcome, not an error")
}

func TestParseFixtures_ProseAroundPayload(t *testing.T) {
	text := `Here are the matches you asked for:
[{"homeTeam": "A", "awayTeam": "B"}]
Let me know if you need anything else!`

	fixtures, err := ParseFixtures(text)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Empty(t, fixtures[0].Time, "missing kickoff time is allowed")
}

func TestParseFixtures_MarkdownFence(t *testing.T) {
	text := "```json\n[{\"homeTeam\": \"A\", \"awayTeam\": \"B\", \"time\": \"19:00\"}]\n```"

	fixtures, err := ParseFixtures(text)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
}

func TestParseFixtures_NoPayload(t *testing.T) {
	_, err := ParseFixtures("I could not find any matches for that date, sorry.")
	require.Error(t, err)
	assert.Equal(t, KindNoPayload, Kind(err))
}

func TestParseFixtures_TruncatedPayloadIsMalformed(t *testing.T) {
	_, err := ParseFixtures(`Sure! Here are the matches: [{"homeTeam": "A"}`)
	require.Error(t, err)
	assert.Equal(t, KindMalformed, Kind(err))

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Contains(t, ee.Raw, "Sure!", "raw text is retained for diagnostics")
}

func TestParseAnalysis_ProseAndFence(t *testing.T) {
	text := "Of course. Here is the analysis:\n```json\n" +
		`{"matchStatus": "finished", "finalScore": "2 - 1"}` + "\n```\nGood luck!"

	raw, err := ParseAnalysis(text)
	require.NoError(t, err)
	assert.Equal(t, "finished", raw.MatchStatus)
	assert.Equal(t, "2 - 1", raw.FinalScore)
}

func TestParseAnalysis_NoPayload(t *testing.T) {
	_, err := ParseAnalysis("The model is unable to answer that.")
	require.Error(t, err)
	assert.Equal(t, KindNoPayload, Kind(err))
}

func TestParseAnalysis_UnbalancedObject(t *testing.T) {
	_, err := ParseAnalysis(`{"matchStatus": "upcoming", "teamA": {`)
	require.Error(t, err)
	assert.Equal(t, KindMalformed, Kind(err))
}

func TestKind_NonExtractionError(t *testing.T) {
	assert.Equal(t, KindNone, Kind(assert.AnError))
	assert.Equal(t, KindNone, Kind(nil))
}

func TestPercent_LenientDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"over": 62.5, "under": 37.5}`, 62.5},
		{"numeric string", `{"over": "62.5"}`, 62.5},
		{"null", `{"over": null}`, 0},
		{"garbage string", `{"over": "N/A"}`, 0},
		{"missing", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseAnalysis(`{"probabilities": {"overUnder25": ` + tt.in + `}}`)
			require.NoError(t, err)
			require.NotNil(t, raw.Probabilities)
			require.NotNil(t, raw.Probabilities.OverUnder25)
			assert.Equal(t, tt.want, float64(raw.Probabilities.OverUnder25.Over))
		})
	}
}

func TestLocateSpan_NestedBraces(t *testing.T) {
	text := `prefix {"a": {"b": 1}} suffix`
	span, err := Object(text)
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, span)
}
