package dropdown

// The interaction state machine. Three states fall out of SelectionState:
//
//	Closed            ListExpanded == false
//	Open-NoCandidate  ListExpanded == true, Candidate == nil
//	Open-Candidate    ListExpanded == true, Candidate != nil
//
// Step is a pure transition function over those states; the widget applies
// the returned effects. Every transition is synchronous and atomic with
// respect to the single event being handled.

// NavKey is a normalized navigation key.
type NavKey int

const (
	KeyDown NavKey = iota
	KeyUp
	KeyPageDown
	KeyPageUp
	KeyEnter
	KeyTab
	KeyEscape
)

// Event is a normalized input event consumed by Step. The Bubble Tea adapter
// in widget.go produces these from tea messages; tests construct them
// directly.
type Event interface{ isEvent() }

// KeyEvent is a navigation or commit/cancel key press.
type KeyEvent struct{ Key NavKey }

// RowClickEvent is a pointer press on the option row at the given flattened
// index.
type RowClickEvent struct{ Index int }

// OutsideClickEvent is a pointer press outside the option rows: on the
// closed face it opens the list, on an open list it closes it.
type OutsideClickEvent struct{}

// FocusLostEvent is delivered when keyboard focus leaves the widget.
// Hovering reports whether the pointer is over the option list; focus loss
// while hovering is ignored so the imminent row click can land.
type FocusLostEvent struct{ Hovering bool }

// SourceChangedEvent reports that the control's value was mutated directly,
// by assistive technology or programmatically.
type SourceChangedEvent struct{ Value string }

// RuneEvent is an alphanumeric key press. Typeahead search is deliberately
// unimplemented; the branch exists so the limitation is explicit rather
// than a silent default.
type RuneEvent struct{ Rune rune }

func (KeyEvent) isEvent()           {}
func (RowClickEvent) isEvent()      {}
func (OutsideClickEvent) isEvent()  {}
func (FocusLostEvent) isEvent()     {}
func (SourceChangedEvent) isEvent() {}
func (RuneEvent) isEvent()          {}

// Effects tells the host what a transition requires beyond the state change.
type Effects struct {
	Render    bool // re-run the projector
	SyncValue bool // push the committed value onto the control
	Announce  bool // fire the control's change notification
}

// Step consumes one normalized event and returns the next state plus the
// effects the host must apply. A non-nil error is an InvalidOptionError and
// means the caller violated the option-set contract; navigation itself never
// produces one.
func Step(st SelectionState, m *OptionModel, ev Event) (SelectionState, Effects, error) {
	switch ev := ev.(type) {
	case SourceChangedEvent:
		// The control is authoritative: resync the display and close in
		// every state.
		if err := st.SetCommitted(m, ev.Value); err != nil {
			return st, Effects{}, err
		}
		return st, Effects{Render: true}, nil

	case RuneEvent:
		// Typeahead: reserved, no action.
		return st, Effects{}, nil
	}

	if !st.ListExpanded {
		return stepClosed(st, m, ev)
	}
	return stepOpen(st, m, ev)
}

func stepClosed(st SelectionState, m *OptionModel, ev Event) (SelectionState, Effects, error) {
	switch ev := ev.(type) {
	case OutsideClickEvent:
		st.ToggleExpanded()
		return st, Effects{Render: true}, nil

	case KeyEvent:
		switch ev.Key {
		case KeyDown, KeyUp, KeyPageDown, KeyPageUp:
			// First press only opens the list; navigation begins on the
			// next one.
			st.ListExpanded = true
			return st, Effects{Render: true}, nil
		}
	}
	// Row clicks cannot happen while rows are hidden; enter/tab/escape and
	// focus loss are no-ops when closed.
	return st, Effects{}, nil
}

func stepOpen(st SelectionState, m *OptionModel, ev Event) (SelectionState, Effects, error) {
	switch ev := ev.(type) {
	case OutsideClickEvent:
		// Close without committing. With a live candidate this discards it;
		// the commit-on-focusout path below deliberately behaves differently.
		if st.Candidate != nil {
			st.CancelCandidate()
		} else {
			st.ListExpanded = false
		}
		return st, Effects{Render: true}, nil

	case RowClickEvent:
		if ev.Index < 0 || ev.Index >= m.Len() {
			return st, Effects{}, nil
		}
		if err := st.SetCommitted(m, m.Flat[ev.Index].Value); err != nil {
			return st, Effects{}, err
		}
		return st, Effects{Render: true, SyncValue: true, Announce: true}, nil

	case FocusLostEvent:
		if ev.Hovering {
			return st, Effects{}, nil
		}
		if st.Candidate != nil {
			if err := st.CommitCandidate(m); err != nil {
				return st, Effects{}, err
			}
			return st, Effects{Render: true, SyncValue: true, Announce: true}, nil
		}
		st.ListExpanded = false
		return st, Effects{Render: true}, nil

	case KeyEvent:
		return stepOpenKey(st, m, ev.Key)
	}
	return st, Effects{}, nil
}

func stepOpenKey(st SelectionState, m *OptionModel, k NavKey) (SelectionState, Effects, error) {
	switch k {
	case KeyDown, KeyUp, KeyPageDown, KeyPageUp:
		next := navigate(st, m, k)
		if next == nil {
			// Empty option set: navigation is a no-op.
			return st, Effects{}, nil
		}
		st.BeginCandidate(m, next)
		return st, Effects{Render: true}, nil

	case KeyEnter, KeyTab:
		if st.Candidate == nil {
			return st, Effects{}, nil
		}
		if err := st.CommitCandidate(m); err != nil {
			return st, Effects{}, err
		}
		return st, Effects{Render: true, SyncValue: true, Announce: true}, nil

	case KeyEscape:
		if st.Candidate == nil {
			return st, Effects{}, nil
		}
		st.CancelCandidate()
		return st, Effects{Render: true}, nil
	}
	return st, Effects{}, nil
}

// navigate resolves the target option for a navigation key. Relative moves
// start from the current candidate, or from the committed option on the
// first move of a session; page moves are absolute jumps to the ends.
func navigate(st SelectionState, m *OptionModel, k NavKey) *Option {
	switch k {
	case KeyPageDown:
		return m.Last()
	case KeyPageUp:
		return m.First()
	}

	from := st.Candidate
	if from == nil {
		if o, ok := m.Find(st.CommittedValue); ok {
			from = o
		}
	}
	if k == KeyDown {
		return m.Next(from)
	}
	return m.Prev(from)
}
