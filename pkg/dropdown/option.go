package dropdown

// Option is one selectable item extracted from a control. Immutable once
// extracted; the whole model is rebuilt when the control's entries change.
type Option struct {
	Value       string
	DisplayText string
	Group       *OptionGroup // nil for top-level options
	Index       int          // position in the flattened navigation order
}

// OptionGroup is one visual grouping of options. Groups never own option
// lifecycles; the extracting widget owns both.
type OptionGroup struct {
	Label   string
	Options []*Option
}

// Row is one line of the rendered option list: either a group header or an
// option. Render order preserves the control's nesting; navigation uses the
// flattened order instead.
type Row struct {
	Header bool
	Label  string  // set when Header
	Option *Option // set when !Header
}

// OptionModel is the ordered, navigable representation of a control's
// options. Flat holds the keyboard traversal sequence (options only, group
// boundaries flattened away); Rows holds the display sequence with headers
// interleaved.
type OptionModel struct {
	Flat    []*Option
	Rows    []Row
	Groups  []*OptionGroup
	byValue map[string]*Option
}

// BuildModel extracts the option model from a control's current entries.
// A control with no options yields an empty model in which every navigation
// call is a no-op.
func BuildModel(src *Select) *OptionModel {
	m := &OptionModel{byValue: make(map[string]*Option)}
	for _, e := range src.Entries() {
		if !e.group {
			m.addOption(e, nil)
			continue
		}
		g := &OptionGroup{Label: e.label}
		m.Groups = append(m.Groups, g)
		m.Rows = append(m.Rows, Row{Header: true, Label: e.label})
		for _, c := range e.children {
			if c.group {
				continue
			}
			m.addOption(c, g)
		}
	}
	return m
}

func (m *OptionModel) addOption(e Entry, g *OptionGroup) {
	o := &Option{
		Value:       e.value,
		DisplayText: e.text,
		Group:       g,
		Index:       len(m.Flat),
	}
	m.Flat = append(m.Flat, o)
	m.Rows = append(m.Rows, Row{Option: o})
	if g != nil {
		g.Options = append(g.Options, o)
	}
	if _, dup := m.byValue[o.Value]; !dup {
		m.byValue[o.Value] = o
	}
}

// Len returns the number of reachable options.
func (m *OptionModel) Len() int {
	return len(m.Flat)
}

// Find returns the option with the given value.
func (m *OptionModel) Find(value string) (*Option, bool) {
	o, ok := m.byValue[value]
	return o, ok
}

// First returns the first option in the flattened sequence, or nil when the
// model is empty.
func (m *OptionModel) First() *Option {
	if len(m.Flat) == 0 {
		return nil
	}
	return m.Flat[0]
}

// Last returns the last option in the flattened sequence, or nil when the
// model is empty.
func (m *OptionModel) Last() *Option {
	if len(m.Flat) == 0 {
		return nil
	}
	return m.Flat[len(m.Flat)-1]
}

// Next returns the option after o in the flattened sequence. Group
// boundaries are invisible here: the last option of a group advances to the
// next group's first option. At the absolute end it returns o itself.
func (m *OptionModel) Next(o *Option) *Option {
	if o == nil {
		return m.First()
	}
	if o.Index+1 >= len(m.Flat) {
		return o
	}
	return m.Flat[o.Index+1]
}

// Prev mirrors Next in reverse; at the absolute start it returns o itself.
func (m *OptionModel) Prev(o *Option) *Option {
	if o == nil {
		return m.Last()
	}
	if o.Index == 0 {
		return o
	}
	return m.Flat[o.Index-1]
}

// rowIndex returns the display-row index of an option, for highlight and
// scroll computation. Returns -1 for nil or foreign options.
func (m *OptionModel) rowIndex(o *Option) int {
	if o == nil {
		return -1
	}
	for i, r := range m.Rows {
		if r.Option == o {
			return i
		}
	}
	return -1
}
