package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pitchside/pitchside-cli/internal/catalog"
)

var (
	fixturesCountry     string
	fixturesCompetition string
	fixturesDate        string
	fixturesJSON        bool
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the fixtures of one competition on one day",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fixturesCountry != "" && !catalog.Contains(fixturesCountry, fixturesCompetition) {
			zap.L().Warn("competition not in catalog, querying anyway",
				zap.String("country", fixturesCountry),
				zap.String("competition", fixturesCompetition),
			)
		}

		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		fixtures, err := svc.ListFixtures(cmd.Context(), fixturesCompetition, fixturesDate)
		if err != nil {
			zap.L().Error("find fixtures failed", zap.Error(err))
			return eris.New("could not fetch fixtures; try again or pick another date")
		}

		if fixturesJSON {
			return printJSON(os.Stdout, fixtures)
		}
		renderFixtures(os.Stdout, fixtures)
		return nil
	},
}

func init() {
	fixturesCmd.Flags().StringVar(&fixturesCountry, "country", "", "country key (see catalog)")
	fixturesCmd.Flags().StringVar(&fixturesCompetition, "competition", "", "competition name")
	fixturesCmd.Flags().StringVar(&fixturesDate, "date", "", "date (YYYY-MM-DD)")
	fixturesCmd.Flags().BoolVar(&fixturesJSON, "json", false, "output JSON")
	_ = fixturesCmd.MarkFlagRequired("competition")
	_ = fixturesCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(fixturesCmd)
}
