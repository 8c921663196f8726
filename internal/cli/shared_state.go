package cli

import (
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Latest accepted submission and what it produced. Nil until the
	// first form is submitted.
	LastSubmission *domain.Submission
	LastResult     *service.AnalysisResult

	// Terminal dimensions
	Width  int
	Height int
}

// SetResult records the latest accepted submission.
func (s *SharedState) SetResult(sub domain.Submission, res *service.AnalysisResult) {
	s.LastSubmission = &sub
	s.LastResult = res
}

// HasResult reports whether a submission has been accepted this session.
func (s *SharedState) HasResult() bool {
	return s.LastResult != nil && s.LastSubmission != nil
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
