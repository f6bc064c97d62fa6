package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pitchside/pitchside-cli/internal/analyzer"
	"github.com/pitchside/pitchside-cli/internal/engine"
	"github.com/pitchside/pitchside-cli/internal/model"
)

var (
	analyzeCountry     string
	analyzeCompetition string
	analyzeDate        string
	analyzeHome        string
	analyzeAway        string
	analyzeLang        string
	analyzeJSON        bool
)

// analyzeResponse is the JSON output shape: the record plus the two slips
// derived from it.
type analyzeResponse struct {
	Record       *model.AnalysisRecord     `json:"record"`
	Conservative []model.BetRecommendation `json:"conservative,omitempty"`
	Bingo        []model.BetRecommendation `json:"bingo,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one match and derive bet slips",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		record, err := svc.Analyze(cmd.Context(), analyzer.MatchRequest{
			Country:     analyzeCountry,
			Competition: analyzeCompetition,
			Date:        analyzeDate,
			HomeTeam:    analyzeHome,
			AwayTeam:    analyzeAway,
			Language:    analyzeLang,
		})
		if err != nil {
			zap.L().Error("analysis failed", zap.Error(err))
			return eris.New("could not analyze this match; try again")
		}

		resp := analyzeResponse{Record: record}
		if detail, ok := record.Upcoming(); ok {
			resp.Conservative = engine.Conservative(detail.Probabilities)
			resp.Bingo = engine.Bingo(detail.Probabilities, record.TeamA.Name, record.TeamB.Name)
		}

		if analyzeJSON {
			return printJSON(os.Stdout, resp)
		}

		renderRecord(os.Stdout, record)
		if resp.Conservative != nil {
			renderSlip(os.Stdout, "Conservative slip", resp.Conservative)
			renderSlip(os.Stdout, "Bingo slip", resp.Bingo)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCountry, "country", "", "country key")
	analyzeCmd.Flags().StringVar(&analyzeCompetition, "competition", "", "competition name")
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeHome, "home", "", "home team")
	analyzeCmd.Flags().StringVar(&analyzeAway, "away", "", "away team")
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "en", "narrative language (en|pt)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output JSON")
	_ = analyzeCmd.MarkFlagRequired("competition")
	_ = analyzeCmd.MarkFlagRequired("date")
	_ = analyzeCmd.MarkFlagRequired("home")
	_ = analyzeCmd.MarkFlagRequired("away")
	rootCmd.AddCommand(analyzeCmd)
}
