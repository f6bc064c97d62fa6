package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/pitchside-cli/internal/model"
)

func TestRenderFixtures_Empty(t *testing.T) {
	var sb strings.Builder
	renderFixtures(&sb, nil)
	assert.Contains(t, sb.String(), "No matches scheduled")
}

func TestRenderFixtures_Table(t *testing.T) {
	var sb strings.Builder
	renderFixtures(&sb, []model.Fixture{
		{HomeTeam: "Ajax", AwayTeam: "PSV", Time: "14:30"},
		{HomeTeam: "Feyenoord", AwayTeam: "AZ"},
	})

	out := sb.String()
	assert.Contains(t, out, "Ajax")
	assert.Contains(t, out, "14:30")
	assert.Contains(t, out, "--:--", "missing kickoff time renders as a placeholder")
}

func TestRenderRecord_Finished(t *testing.T) {
	record := model.NewFinishedRecord(
		model.TeamForm{Name: "A", Form: "W-W-D-L-W"},
		model.TeamForm{Name: "B", Form: "L-L-D-W-W"},
		model.HeadToHead{Match: "A 1 - 0 B"},
		"A 2 - 0 B",
		model.MatchStatistics{Possession: model.StatPair{TeamA: 58, TeamB: 42}},
	)

	var sb strings.Builder
	renderRecord(&sb, record)

	out := sb.String()
	assert.Contains(t, out, "Final score: A 2 - 0 B")
	assert.Contains(t, out, "Possession")
	assert.Contains(t, out, "58%")
}

func TestRenderRecord_UpcomingWithCitations(t *testing.T) {
	record := model.NewUpcomingRecord(
		model.TeamForm{Name: "A"},
		model.TeamForm{Name: "B"},
		model.HeadToHead{},
		model.ProbabilitySurface{
			MatchWinner:  model.WinnerOdds{HomeWin: 45, Draw: 30, AwayWin: 25},
			CorrectScore: []model.ScoreLine{{Score: "2-1", Probability: 12}},
		},
	)
	record.AttachCitations([]model.Citation{{URI: "https://example.com", Title: "preview"}})

	var sb strings.Builder
	renderRecord(&sb, record)

	out := sb.String()
	assert.Contains(t, out, "Match winner")
	assert.Contains(t, out, "2-1 (12%)")
	assert.Contains(t, out, "https://example.com")
}

func TestRenderSlip(t *testing.T) {
	var sb strings.Builder
	renderSlip(&sb, "Conservative slip", []model.BetRecommendation{
		{Market: "Both Teams To Score", Selection: "Yes", Probability: 61},
	})

	out := sb.String()
	require.Contains(t, out, "Conservative slip")
	assert.Contains(t, out, "Both Teams To Score")
	assert.Contains(t, out, "61%")
}
