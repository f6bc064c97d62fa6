package model

import "encoding/json"

// UpcomingDetail is the branch of an AnalysisRecord present for matches that
// have not been played yet.
type UpcomingDetail struct {
	Probabilities ProbabilitySurface `json:"probabilities"`
}

// FinishedDetail is the branch of an AnalysisRecord present for matches that
// have already been played.
type FinishedDetail struct {
	FinalScore string          `json:"finalScore"`
	Stats      MatchStatistics `json:"matchStats"`
}

// AnalysisRecord is the validated result of one analysis query. Exactly one
// of the two status branches is populated, selected by Status; the branch
// pointers are unexported so a caller cannot read the wrong branch without
// going through the status-checked accessors. Records are constructed once by
// the validator and immutable afterwards.
type AnalysisRecord struct {
	Status    MatchStatus
	TeamA     TeamForm
	TeamB     TeamForm
	H2H       HeadToHead
	Citations []Citation

	upcoming *UpcomingDetail
	finished *FinishedDetail
}

// NewUpcomingRecord builds a record for a match that has not been played.
func NewUpcomingRecord(teamA, teamB TeamForm, h2h HeadToHead, probs ProbabilitySurface) *AnalysisRecord {
	return &AnalysisRecord{
		Status:   StatusUpcoming,
		TeamA:    teamA,
		TeamB:    teamB,
		H2H:      h2h,
		upcoming: &UpcomingDetail{Probabilities: probs},
	}
}

// NewFinishedRecord builds a record for a completed match.
func NewFinishedRecord(teamA, teamB TeamForm, h2h HeadToHead, finalScore string, stats MatchStatistics) *AnalysisRecord {
	return &AnalysisRecord{
		Status:   StatusFinished,
		TeamA:    teamA,
		TeamB:    teamB,
		H2H:      h2h,
		finished: &FinishedDetail{FinalScore: finalScore, Stats: stats},
	}
}

// Upcoming returns the upcoming-match branch, or false when the record
// describes a finished match.
func (r *AnalysisRecord) Upcoming() (*UpcomingDetail, bool) {
	if r.Status != StatusUpcoming || r.upcoming == nil {
		return nil, false
	}
	return r.upcoming, true
}

// Finished returns the finished-match branch, or false when the record
// describes an upcoming match.
func (r *AnalysisRecord) Finished() (*FinishedDetail, bool) {
	if r.Status != StatusFinished || r.finished == nil {
		return nil, false
	}
	return r.finished, true
}

// AttachCitations appends provenance sources surfaced out-of-band by the
// oracle transport.
func (r *AnalysisRecord) AttachCitations(citations []Citation) {
	r.Citations = append(r.Citations, citations...)
}

// MarshalJSON emits the record in its wire shape: the shared fields plus only
// the branch selected by Status.
func (r *AnalysisRecord) MarshalJSON() ([]byte, error) {
	out := struct {
		Status        MatchStatus         `json:"matchStatus"`
		TeamA         TeamForm            `json:"teamA"`
		TeamB         TeamForm            `json:"teamB"`
		H2H           HeadToHead          `json:"h2h"`
		Citations     []Citation          `json:"citations,omitempty"`
		Probabilities *ProbabilitySurface `json:"probabilities,omitempty"`
		FinalScore    string              `json:"finalScore,omitempty"`
		MatchStats    *MatchStatistics    `json:"matchStats,omitempty"`
	}{
		Status:    r.Status,
		TeamA:     r.TeamA,
		TeamB:     r.TeamB,
		H2H:       r.H2H,
		Citations: r.Citations,
	}
	if d, ok := r.Upcoming(); ok {
		out.Probabilities = &d.Probabilities
	}
	if d, ok := r.Finished(); ok {
		out.FinalScore = d.FinalScore
		out.MatchStats = &d.Stats
	}
	return json.Marshal(out)
}
