// Package analyzer orchestrates the full pipeline for one user action:
// build the prompt, query the oracle once, extract the payload, validate it.
// No automatic retries; a failed call surfaces its classified error
// immediately and the caller decides whether to re-invoke. Each call owns its
// own state, so two calls may be in flight concurrently without
// synchronization.
package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pitchside/pitchside-cli/internal/extract"
	"github.com/pitchside/pitchside-cli/internal/model"
	"github.com/pitchside/pitchside-cli/internal/validate"
	"github.com/pitchside/pitchside-cli/pkg/gemini"
)

// UpstreamError marks a failure of the oracle call itself (network, quota,
// cancellation), as opposed to a failure interpreting its output.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("analyzer: upstream oracle failure: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MatchRequest identifies one fixture to analyze. Language selects the
// narrative language for free-text fields only ("en" or "pt").
type MatchRequest struct {
	Country     string
	Competition string
	Date        string // YYYY-MM-DD
	HomeTeam    string
	AwayTeam    string
	Language    string
}

// Service is the caller-facing API surface of the core pipeline.
type Service struct {
	oracle gemini.Client
}

// New creates a Service bound to an oracle client.
func New(oracle gemini.Client) *Service {
	return &Service{oracle: oracle}
}

// ListFixtures queries the oracle for the fixtures of one competition and
// date. An empty slice is a valid result meaning no matches are scheduled.
func (s *Service) ListFixtures(ctx context.Context, competition, date string) ([]model.Fixture, error) {
	log := zap.L().With(
		zap.String("request_id", uuid.NewString()),
		zap.String("competition", competition),
		zap.String("date", date),
	)

	resp, err := s.oracle.Generate(ctx, fixturesPrompt(competition, date))
	if err != nil {
		log.Warn("fixtures query failed", zap.Error(err))
		return nil, &UpstreamError{Err: err}
	}

	fixtures, err := extract.ParseFixtures(resp.Text)
	if err != nil {
		log.Warn("fixture extraction failed",
			zap.Stringer("kind", extract.Kind(err)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("fixtures listed", zap.Int("count", len(fixtures)))
	return fixtures, nil
}

// Analyze queries the oracle for one match analysis and returns the
// validated record with grounding citations attached.
func (s *Service) Analyze(ctx context.Context, req MatchRequest) (*model.AnalysisRecord, error) {
	log := zap.L().With(
		zap.String("request_id", uuid.NewString()),
		zap.String("home", req.HomeTeam),
		zap.String("away", req.AwayTeam),
		zap.String("date", req.Date),
	)

	resp, err := s.oracle.Generate(ctx, analysisPrompt(req))
	if err != nil {
		log.Warn("analysis query failed", zap.Error(err))
		return nil, &UpstreamError{Err: err}
	}

	raw, err := extract.ParseAnalysis(resp.Text)
	if err != nil {
		log.Warn("analysis extraction failed",
			zap.Stringer("kind", extract.Kind(err)),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := validate.Record(raw)
	if err != nil {
		log.Warn("analysis validation failed", zap.Error(err))
		return nil, err
	}

	record.AttachCitations(citations(resp.Citations))

	log.Info("analysis complete",
		zap.String("status", string(record.Status)),
		zap.Int("citations", len(record.Citations)),
	)
	return record, nil
}

func citations(in []gemini.Citation) []model.Citation {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Citation, 0, len(in))
	for _, c := range in {
		out = append(out, model.Citation{URI: c.URI, Title: c.Title})
	}
	return out
}
