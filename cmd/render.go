package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pitchside/pitchside-cli/internal/model"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderFixtures writes the fixture list as an aligned table.
func renderFixtures(w io.Writer, fixtures []model.Fixture) {
	if len(fixtures) == 0 {
		fmt.Fprintln(w, "No matches scheduled.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tHOME\tAWAY")
	for _, f := range fixtures {
		t := f.Time
		if t == "" {
			t = "--:--"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t, f.HomeTeam, f.AwayTeam)
	}
	tw.Flush()
}

// renderSlip writes one derived bet slip.
func renderSlip(w io.Writer, title string, slip []model.BetRecommendation) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, bet := range slip {
		fmt.Fprintf(tw, "  %s\t%s\t%.0f%%\n", bet.Market, bet.Selection, bet.Probability)
	}
	tw.Flush()
}

// renderRecord writes the analysis record in a terminal-friendly layout.
func renderRecord(w io.Writer, record *model.AnalysisRecord) {
	fmt.Fprintf(w, "%s vs %s\n", record.TeamA.Name, record.TeamB.Name)
	fmt.Fprintf(w, "Form: %s  |  %s\n", record.TeamA.Form, record.TeamB.Form)
	if record.H2H.Match != "" {
		fmt.Fprintf(w, "Last meeting: %s\n", record.H2H.Match)
	}

	if detail, ok := record.Finished(); ok {
		fmt.Fprintf(w, "Final score: %s\n", detail.FinalScore)
		renderStats(w, detail.Stats, record.TeamA.Name, record.TeamB.Name)
		return
	}

	if detail, ok := record.Upcoming(); ok {
		p := detail.Probabilities
		fmt.Fprintf(w, "\nMatch winner: %s %.0f%%  Draw %.0f%%  %s %.0f%%\n",
			record.TeamA.Name, p.MatchWinner.HomeWin,
			p.MatchWinner.Draw,
			record.TeamB.Name, p.MatchWinner.AwayWin,
		)
		fmt.Fprintf(w, "Over/Under 2.5: %.0f%% / %.0f%%   BTTS: %.0f%% / %.0f%%\n",
			p.OverUnder25.Over, p.OverUnder25.Under,
			p.BTTS.Yes, p.BTTS.No,
		)
		if len(p.CorrectScore) > 0 {
			fmt.Fprint(w, "Likely scores:")
			for _, s := range p.CorrectScore {
				fmt.Fprintf(w, "  %s (%.0f%%)", s.Score, s.Probability)
			}
			fmt.Fprintln(w)
		}
	}

	if len(record.Citations) > 0 {
		fmt.Fprintln(w, "\nSources:")
		for _, c := range record.Citations {
			if c.Title != "" {
				fmt.Fprintf(w, "  %s — %s\n", c.Title, c.URI)
			} else {
				fmt.Fprintf(w, "  %s\n", c.URI)
			}
		}
	}
}

func renderStats(w io.Writer, stats model.MatchStatistics, teamA, teamB string) {
	fmt.Fprintf(w, "\nMatch statistics (%s / %s)\n", teamA, teamB)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Possession\t%.0f%%\t%.0f%%\n", stats.Possession.TeamA, stats.Possession.TeamB)
	fmt.Fprintf(tw, "  Shots on target\t%.0f\t%.0f\n", stats.ShotsOnTarget.TeamA, stats.ShotsOnTarget.TeamB)
	fmt.Fprintf(tw, "  Corners\t%.0f\t%.0f\n", stats.Corners.TeamA, stats.Corners.TeamB)
	fmt.Fprintf(tw, "  Fouls\t%.0f\t%.0f\n", stats.Fouls.TeamA, stats.Fouls.TeamB)
	fmt.Fprintf(tw, "  Yellow cards\t%.0f\t%.0f\n", stats.YellowCards.TeamA, stats.YellowCards.TeamB)
	fmt.Fprintf(tw, "  Red cards\t%.0f\t%.0f\n", stats.RedCards.TeamA, stats.RedCards.TeamB)
	tw.Flush()
}
