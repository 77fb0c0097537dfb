package dropdown

// SelectionState holds the committed selection and, while the list is open
// and navigation has occurred, the in-progress candidate. It is decoupled
// from rendering: the projector reads it, nothing else writes it except the
// operations below.
//
// Invariants: Candidate and Anchor are either both nil or both set, and
// CommittedValue always resolves in the current option model (or is the
// empty sentinel).
type SelectionState struct {
	CommittedValue string
	CommittedText  string
	Candidate      *Option // highlighted but not yet accepted
	Anchor         *Option // committed option at navigation start, for rollback
	ListExpanded   bool
}

// SetCommitted accepts value as the new committed selection. The empty
// string is always accepted as the designated empty sentinel; any other
// value must resolve in the model or an InvalidOptionError is returned.
// Clears any candidate/anchor and collapses the list.
func (s *SelectionState) SetCommitted(m *OptionModel, value string) error {
	text := ""
	if o, ok := m.Find(value); ok {
		text = o.DisplayText
	} else if value != "" {
		return &InvalidOptionError{Value: value}
	}
	s.CommittedValue = value
	s.CommittedText = text
	s.Candidate = nil
	s.Anchor = nil
	s.ListExpanded = false
	return nil
}

// BeginCandidate highlights cand without altering the committed selection.
// The first candidate of a navigation session captures the current committed
// option as the anchor, the rollback point for CancelCandidate. Requires the
// list to be expanded; calls while collapsed are ignored.
func (s *SelectionState) BeginCandidate(m *OptionModel, cand *Option) {
	if !s.ListExpanded || cand == nil {
		return
	}
	if s.Anchor == nil {
		if a, ok := m.Find(s.CommittedValue); ok {
			s.Anchor = a
		} else {
			// Committed value is the empty sentinel with no backing option;
			// anchor a detached stand-in so rollback still restores it.
			s.Anchor = &Option{Value: s.CommittedValue, DisplayText: s.CommittedText, Index: -1}
		}
	}
	s.Candidate = cand
}

// CommitCandidate accepts the current candidate. No-op when no candidate is
// present.
func (s *SelectionState) CommitCandidate(m *OptionModel) error {
	if s.Candidate == nil {
		return nil
	}
	return s.SetCommitted(m, s.Candidate.Value)
}

// CancelCandidate rolls the display back to the anchor and collapses the
// list. No-op when no candidate is present.
func (s *SelectionState) CancelCandidate() {
	if s.Candidate == nil {
		return
	}
	s.CommittedValue = s.Anchor.Value
	s.CommittedText = s.Anchor.DisplayText
	s.Candidate = nil
	s.Anchor = nil
	s.ListExpanded = false
}

// ToggleExpanded flips list visibility without touching candidate or anchor.
func (s *SelectionState) ToggleExpanded() {
	s.ListExpanded = !s.ListExpanded
}

// DisplayText returns what the text surface should show: the candidate's
// text while one is highlighted and the list is open, otherwise the
// committed text.
func (s *SelectionState) DisplayText() string {
	if s.ListExpanded && s.Candidate != nil {
		return s.Candidate.DisplayText
	}
	return s.CommittedText
}
