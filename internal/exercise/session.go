package exercise

import (
	"errors"

	"github.com/google/uuid"

	"go_french_gapfill/internal/model"
)

// Session state errors.
var (
	ErrSessionSubmitted     = errors.New("session already submitted")
	ErrIncompleteSubmission = errors.New("not every blank has a selection")
	ErrUnknownBlank         = errors.New("unknown blank")
)

// Results holds the outcome of one submission.
type Results struct {
	// PerBlank maps blank ID to correctness of the selected option.
	PerBlank map[uuid.UUID]bool
	Score    int
	Total    int
}

// Session tracks user selections for one rendering of one article.
//
// It is a two-state machine: Active (selections mutable, submit gated on
// completeness) and Submitted (selections frozen, results available), with
// Reset returning to Active. Selections are matched to options by text
// equality, so content authoring must avoid duplicate option text within a
// blank. The session holds references into the (immutable) shuffled
// document and never talks to the network.
type Session struct {
	blanks     []model.BlankView
	byID       map[uuid.UUID]*model.BlankView
	selections map[uuid.UUID]string
	results    map[uuid.UUID]bool
	submitted  bool
}

// NewSession starts an Active session over the given blanks, which should
// come from the document actually being rendered (shuffled or not).
func NewSession(blanks []model.BlankView) *Session {
	s := &Session{
		blanks:     blanks,
		byID:       make(map[uuid.UUID]*model.BlankView, len(blanks)),
		selections: make(map[uuid.UUID]string),
		results:    make(map[uuid.UUID]bool),
	}
	for i := range blanks {
		s.byID[blanks[i].ID] = &s.blanks[i]
	}
	return s
}

// Select records the option text chosen for a blank, overwriting any
// earlier choice. An empty text clears the selection. Selections are frozen
// once the session is submitted.
func (s *Session) Select(blankID uuid.UUID, text string) error {
	if s.submitted {
		return ErrSessionSubmitted
	}
	if _, ok := s.byID[blankID]; !ok {
		return ErrUnknownBlank
	}
	if text == "" {
		delete(s.selections, blankID)
		return nil
	}
	s.selections[blankID] = text
	return nil
}

// Selection returns the current selection for a blank, if any.
func (s *Session) Selection(blankID uuid.UUID) (string, bool) {
	text, ok := s.selections[blankID]
	return text, ok
}

// Total returns the number of blanks in the exercise.
func (s *Session) Total() int {
	return len(s.blanks)
}

// Completed returns the number of blanks with a non-empty selection.
func (s *Session) Completed() int {
	return len(s.selections)
}

// CanSubmit reports whether every blank has a selection. The submit action
// is disabled until this holds.
func (s *Session) CanSubmit() bool {
	return len(s.selections) == len(s.blanks)
}

// Submitted reports whether the session has transitioned to Submitted.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Submit grades every blank and freezes the session. It fails unless every
// blank has a selection. Correctness is the selected option's Correct flag,
// defaulting to false when no option matches the selected text.
func (s *Session) Submit() (*Results, error) {
	if s.submitted {
		return nil, ErrSessionSubmitted
	}
	if !s.CanSubmit() {
		return nil, ErrIncompleteSubmission
	}

	for _, blank := range s.blanks {
		selected := s.selections[blank.ID]
		correct := false
		for _, opt := range blank.Options {
			if opt.Text == selected {
				correct = opt.Correct
				break
			}
		}
		s.results[blank.ID] = correct
	}
	s.submitted = true

	return s.resultsSnapshot(), nil
}

// Result returns the graded correctness for a blank after submission.
func (s *Session) Result(blankID uuid.UUID) (correct, graded bool) {
	correct, graded = s.results[blankID]
	return correct, graded
}

// Score returns the number of correctly answered blanks (0 before submit).
func (s *Session) Score() int {
	score := 0
	for _, correct := range s.results {
		if correct {
			score++
		}
	}
	return score
}

// Results returns the current grading snapshot, or nil while Active.
func (s *Session) Results() *Results {
	if !s.submitted {
		return nil
	}
	return s.resultsSnapshot()
}

// Reset clears selections, results, and the submitted flag, returning the
// session to a state indistinguishable from initial load.
func (s *Session) Reset() {
	s.selections = make(map[uuid.UUID]string)
	s.results = make(map[uuid.UUID]bool)
	s.submitted = false
}

func (s *Session) resultsSnapshot() *Results {
	perBlank := make(map[uuid.UUID]bool, len(s.results))
	for id, correct := range s.results {
		perBlank[id] = correct
	}
	return &Results{
		PerBlank: perBlank,
		Score:    s.Score(),
		Total:    s.Total(),
	}
}
