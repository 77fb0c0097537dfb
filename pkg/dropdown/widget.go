package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/styledselect/internal/icons"
)

// ChangedMsg is emitted as a tea.Cmd when a widget commits a new value onto
// its control.
type ChangedMsg struct {
	Src   *Select
	Value string
}

// Widget is one replacement surface over one control. It owns its
// SelectionState and extracted option model exclusively and holds a
// reference, never ownership, to the control. Create with Attach, destroy
// with Close.
type Widget struct {
	src    *Select
	reg    *Registry
	cfg    effectiveConfig
	keymap KeyMap

	model  *OptionModel
	state  SelectionState
	layout Layout
	proj   Projector

	box          Box
	removeHook   func()
	suppressSync bool // guards against re-entry while pushing a commit
	closed       bool
}

// Attach builds a widget over src in the default registry.
func Attach(src *Select, opts Options) (*Widget, error) {
	return AttachTo(defaultRegistry, src, opts)
}

// AttachTo builds a widget over src: resolves the effective configuration,
// extracts the option model, computes layout, registers the widget, and
// hooks the control's change notification. A configuration error aborts
// before any of that, leaving the control untouched.
func AttachTo(reg *Registry, src *Select, opts Options) (*Widget, error) {
	styles := DefaultStyles()
	cfg, err := resolveConfig(src, opts, styles)
	if err != nil {
		return nil, err
	}

	iconSet, err := icons.Load(cfg.iconBase)
	if err != nil {
		return nil, err
	}
	styles.Face = cfg.faceStyle

	w := &Widget{
		src:    src,
		reg:    reg,
		cfg:    cfg,
		keymap: DefaultKeyMap(),
		model:  BuildModel(src),
		proj: Projector{
			Styles:    styles,
			Icons:     iconSet,
			Separator: cfg.separator,
		},
	}
	if err := w.state.SetCommitted(w.model, src.Value()); err != nil {
		return nil, err
	}

	w.box = measureBox(w.model, IconWidth(iconSet.Collapsed), cfg.separator)
	w.layout = ComputeLayout(w.box, cfg.height, IconWidth(iconSet.Collapsed), reg.viewportHeight())
	if cfg.multiline {
		mk, err := NewMarkup(w.layout.FaceTextWidth)
		if err != nil {
			return nil, err
		}
		w.proj.Markup = mk
	}

	w.removeHook = src.onChange(func(v string) {
		if w.suppressSync {
			return
		}
		// Best effort: a value the widget cannot resolve is a caller
		// contract violation, and the next sync will surface it.
		_ = w.HandleEvent(SourceChangedEvent{Value: v})
	})
	reg.add(w)
	return w, nil
}

// measureBox derives the control's outer box from its content: the widest
// display text plus padding, indicator, and separator.
func measureBox(m *OptionModel, iconWidth int, separator bool) Box {
	width := 0
	for _, o := range m.Flat {
		if w := ansi.StringWidth(o.DisplayText); w > width {
			width = w
		}
	}
	width += facePadding + iconWidth
	if separator {
		width++
	}
	return Box{Width: width, Height: 1}
}

// HandleEvent feeds one normalized event through the state machine and
// applies its effects. In overlay-only mode the control remains the
// exclusive interactive surface, so everything except a source change is
// ignored. The returned error is an InvalidOptionError contract violation.
func (w *Widget) HandleEvent(ev Event) error {
	if !w.cfg.fullReplace {
		if _, ok := ev.(SourceChangedEvent); !ok {
			return nil
		}
	}

	st, fx, err := Step(w.state, w.model, ev)
	if err != nil {
		return err
	}
	w.state = st
	if fx.SyncValue {
		w.pushValue(fx.Announce)
	}
	return nil
}

// pushValue mirrors the committed value onto the control, suppressing the
// widget's own change hook for the duration.
func (w *Widget) pushValue(announce bool) {
	w.suppressSync = true
	if announce {
		w.src.SetValue(w.state.CommittedValue)
	} else {
		w.src.value = w.state.CommittedValue
	}
	w.suppressSync = false
}

// Update is the Bubble Tea adapter: it translates key messages into machine
// events. Viewport sizing is not handled here; hosts deliver
// tea.WindowSizeMsg once to the registry's Viewport instead of to each
// widget.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var ev Event
	switch {
	case key.Matches(keyMsg, w.keymap.Down):
		ev = KeyEvent{Key: KeyDown}
	case key.Matches(keyMsg, w.keymap.Up):
		ev = KeyEvent{Key: KeyUp}
	case key.Matches(keyMsg, w.keymap.PageDown):
		ev = KeyEvent{Key: KeyPageDown}
	case key.Matches(keyMsg, w.keymap.PageUp):
		ev = KeyEvent{Key: KeyPageUp}
	case key.Matches(keyMsg, w.keymap.Enter):
		ev = KeyEvent{Key: KeyEnter}
	case key.Matches(keyMsg, w.keymap.Tab):
		ev = KeyEvent{Key: KeyTab}
	case key.Matches(keyMsg, w.keymap.Escape):
		ev = KeyEvent{Key: KeyEscape}
	case keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1:
		ev = RuneEvent{Rune: keyMsg.Runes[0]}
	default:
		return nil
	}

	before := w.src.Value()
	if err := w.HandleEvent(ev); err != nil {
		return nil
	}
	if after := w.src.Value(); after != before {
		return func() tea.Msg {
			return ChangedMsg{Src: w.src, Value: after}
		}
	}
	return nil
}

// ClickRow reports a pointer press on the option row at the given flattened
// index.
func (w *Widget) ClickRow(index int) error {
	return w.HandleEvent(RowClickEvent{Index: index})
}

// ClickOutside reports a pointer press outside the option rows.
func (w *Widget) ClickOutside() error {
	return w.HandleEvent(OutsideClickEvent{})
}

// FocusLost reports that keyboard focus left the widget; hovering is whether
// the pointer is over the option list.
func (w *Widget) FocusLost(hovering bool) error {
	return w.HandleEvent(FocusLostEvent{Hovering: hovering})
}

// View renders the widget. Overlay-only widgets render the face alone; full
// replacement renders the face with the option list below while expanded.
func (w *Widget) View() string {
	if !w.cfg.fullReplace {
		return w.proj.Face(w.state, w.layout)
	}
	return w.proj.View(w.state, w.model, w.layout)
}

// State returns a snapshot of the selection state.
func (w *Widget) State() SelectionState {
	return w.state
}

// Model returns the extracted option model.
func (w *Widget) Model() *OptionModel {
	return w.model
}

// ListMaxHeight returns the current option-list cap, for tests and hosts
// that composite overlays themselves.
func (w *Widget) ListMaxHeight() int {
	return w.layout.ListMaxHeight
}

// ZIndex returns the overlay ordering hint from the attach-time options,
// for hosts that composite multiple expanded widgets.
func (w *Widget) ZIndex() int {
	return w.cfg.zIndex
}

// Resize re-runs the layout sizer against the current box and viewport.
func (w *Widget) Resize() {
	w.layout = ComputeLayout(w.box, w.cfg.height, w.layout.IconWidth, w.reg.viewportHeight())
}

// relayout recomputes geometry for a new viewport height. Called by the
// registry's shared viewport fan-out with its lock held.
func (w *Widget) relayout(viewportHeight int) {
	w.layout = ComputeLayout(w.box, w.cfg.height, w.layout.IconWidth, viewportHeight)
}

// Sync re-projects the display from the control's current value.
func (w *Widget) Sync() error {
	return w.HandleEvent(SourceChangedEvent{Value: w.src.Value()})
}

// Refresh rebuilds the option model wholesale from the control's current
// entries and re-measures the surface. No incremental diffing: the previous
// model is discarded. A committed value that no longer resolves falls back
// to the empty sentinel.
func (w *Widget) Refresh() {
	w.model = BuildModel(w.src)
	if _, ok := w.model.Find(w.state.CommittedValue); !ok {
		w.state = SelectionState{}
	} else {
		// Drop any navigation in progress; the options it pointed at are gone.
		_ = w.state.SetCommitted(w.model, w.state.CommittedValue)
	}
	w.box = measureBox(w.model, w.layout.IconWidth, w.cfg.separator)
	w.Resize()
}

// Close is the explicit teardown contract: it detaches the change hook and
// removes the widget from its registry, releasing the shared viewport
// watcher when it was the last full-replacement widget. Idempotent.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.removeHook != nil {
		w.removeHook()
	}
	w.reg.remove(w)
}
