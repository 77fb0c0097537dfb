package dropdown

// Entry is one child of a Select: either a single option or a labeled group
// of options. Build entries with Opt and GroupOf; document order is the order
// they are passed to NewSelect.
type Entry struct {
	group    bool
	value    string
	text     string
	label    string
	children []Entry
}

// Opt creates a flat option entry. An empty value is a valid placeholder.
func Opt(value, text string) Entry {
	return Entry{value: value, text: text}
}

// GroupOf creates a labeled group entry. Nested groups are not supported;
// group children that are themselves groups are ignored by the extractor.
func GroupOf(label string, opts ...Entry) Entry {
	return Entry{group: true, label: label, children: opts}
}

// Select is the plain selection control a widget replaces. It owns the option
// entries and the committed value; the widget mirrors it but never owns it.
// The value held here is authoritative.
type Select struct {
	entries []Entry
	value   string
	attrs   map[string]string
	change  map[int]func(string)
	nextID  int
}

// NewSelect creates a control with the given entries. The initial value is
// the first option's value, matching platform select behavior, or empty when
// there are no options.
func NewSelect(entries ...Entry) *Select {
	s := &Select{
		entries: entries,
		attrs:   make(map[string]string),
		change:  make(map[int]func(string)),
	}
	for _, e := range entries {
		if !e.group {
			s.value = e.value
			return s
		}
		for _, c := range e.children {
			if !c.group {
				s.value = c.value
				return s
			}
		}
	}
	return s
}

// Entries returns the control's children in document order.
func (s *Select) Entries() []Entry {
	return s.entries
}

// SetEntries replaces the control's children. Attached widgets must be told
// to Refresh afterwards; no change notification fires.
func (s *Select) SetEntries(entries []Entry) {
	s.entries = entries
}

// Value returns the committed value.
func (s *Select) Value() string {
	return s.value
}

// SetValue updates the committed value and fires change listeners. This is
// the programmatic/assistive-technology path; an attached widget observes it
// through its change hook and resyncs its display.
func (s *Select) SetValue(v string) {
	s.value = v
	for _, fn := range s.change {
		fn(v)
	}
}

// SetAttr sets a declarative attribute on the control. Recognized attributes
// (AttrFullReplace, AttrMultiline) override the corresponding programmatic
// options at attach time when set to the truthy token.
func (s *Select) SetAttr(name, value string) {
	s.attrs[name] = value
}

// Attr returns the value of a declarative attribute, or "" when unset.
func (s *Select) Attr(name string) string {
	return s.attrs[name]
}

// onChange registers a change listener and returns its remover. Widgets use
// the remover during teardown.
func (s *Select) onChange(fn func(string)) func() {
	id := s.nextID
	s.nextID++
	s.change[id] = fn
	return func() { delete(s.change, id) }
}

// hasListeners reports whether any change listener is attached. Used by tests
// to verify that a failed attach leaves the control untouched.
func (s *Select) hasListeners() bool {
	return len(s.change) > 0
}
