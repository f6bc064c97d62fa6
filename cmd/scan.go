package main

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/pitchside/pitchside-cli/internal/analyzer"
	"github.com/pitchside/pitchside-cli/internal/engine"
)

var (
	scanCountry     string
	scanCompetition string
	scanDate        string
	scanLang        string
	scanJSON        bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Analyze every fixture of one competition day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		fixtures, err := svc.ListFixtures(ctx, scanCompetition, scanDate)
		if err != nil {
			zap.L().Error("find fixtures failed", zap.Error(err))
			return eris.New("could not fetch fixtures; try again or pick another date")
		}
		if len(fixtures) == 0 {
			renderFixtures(os.Stdout, fixtures)
			return nil
		}

		concurrency := cfg.Scan.Concurrency
		if concurrency <= 0 {
			concurrency = 1
		}
		qpm := cfg.Scan.QueriesPerMin
		if qpm <= 0 {
			qpm = 1
		}

		zap.L().Info("scanning fixtures",
			zap.Int("fixtures", len(fixtures)),
			zap.Int("concurrency", concurrency),
		)

		limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(qpm)), 1)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		results := make([]analyzeResponse, len(fixtures))
		var succeeded, failed atomic.Int64

		for i, fixture := range fixtures {
			g.Go(func() error {
				log := zap.L().With(
					zap.String("home", fixture.HomeTeam),
					zap.String("away", fixture.AwayTeam),
				)

				if err := limiter.Wait(gctx); err != nil {
					return err
				}

				record, err := svc.Analyze(gctx, analyzer.MatchRequest{
					Country:     scanCountry,
					Competition: scanCompetition,
					Date:        scanDate,
					HomeTeam:    fixture.HomeTeam,
					AwayTeam:    fixture.AwayTeam,
					Language:    scanLang,
				})
				if err != nil {
					failed.Add(1)
					log.Error("analysis failed", zap.Error(err))
					return nil // don't abort the scan on individual failure
				}

				resp := analyzeResponse{Record: record}
				if detail, ok := record.Upcoming(); ok {
					resp.Conservative = engine.Conservative(detail.Probabilities)
					resp.Bingo = engine.Bingo(detail.Probabilities, record.TeamA.Name, record.TeamB.Name)
				}
				results[i] = resp

				succeeded.Add(1)
				log.Info("analysis complete", zap.String("status", string(record.Status)))
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "scan")
		}

		zap.L().Info("scan complete",
			zap.Int64("succeeded", succeeded.Load()),
			zap.Int64("failed", failed.Load()),
		)

		if scanJSON {
			out := make([]analyzeResponse, 0, len(results))
			for _, r := range results {
				if r.Record != nil {
					out = append(out, r)
				}
			}
			return printJSON(os.Stdout, out)
		}

		for _, r := range results {
			if r.Record == nil {
				continue
			}
			renderRecord(os.Stdout, r.Record)
			if r.Conservative != nil {
				renderSlip(os.Stdout, "Conservative slip", r.Conservative)
				renderSlip(os.Stdout, "Bingo slip", r.Bingo)
			}
			os.Stdout.WriteString("\n")
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanCountry, "country", "", "country key")
	scanCmd.Flags().StringVar(&scanCompetition, "competition", "", "competition name")
	scanCmd.Flags().StringVar(&scanDate, "date", "", "date (YYYY-MM-DD)")
	scanCmd.Flags().StringVar(&scanLang, "lang", "en", "narrative language (en|pt)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output JSON")
	_ = scanCmd.MarkFlagRequired("competition")
	_ = scanCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(scanCmd)
}
