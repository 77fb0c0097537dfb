// Package dropdown visually replaces a plain selection control with a
// custom-styled surface while keeping the control's value authoritative.
//
// A Select holds the options and committed value; an attached Widget renders
// a replacement face and, in full-replacement mode, a custom option list
// with keyboard navigation. Keyboard navigation distinguishes intermediate
// ("candidate") selection from committed selection: arrows and page keys
// highlight without committing, Enter/Tab commit, Escape rolls back to the
// value held when navigation began.
//
// # Quick Start
//
//	src := dropdown.NewSelect(
//	    dropdown.Opt("", ""),
//	    dropdown.Opt("3", "An Option"),
//	    dropdown.GroupOf("Extras",
//	        dropdown.Opt("5", "Grouped A"),
//	        dropdown.Opt("6", "Grouped B"),
//	    ),
//	)
//	w, err := dropdown.Attach(src, dropdown.Options{
//	    IconBase:    "./assets",
//	    FullReplace: true,
//	})
//
//	// In Update():
//	cmd := w.Update(msg)
//
//	// On tea.WindowSizeMsg (once per program, not per widget):
//	dropdown.Viewport(msg.Width, msg.Height)
//
//	// In View():
//	s := w.View()
//
//	// On teardown:
//	w.Close()
//
// # Modes
//
//   - Full replacement: the option list is re-rendered as custom rows and
//     the widget handles all interaction.
//   - Overlay-only: the widget only mirrors the control's value into the
//     face text; the control keeps receiving all input directly.
//
// Declarative attributes on the control (AttrFullReplace, AttrMultiline)
// override the programmatic flags when set to "true".
//
// The option-list height cap is half the viewport, recomputed through one
// process-wide watcher shared by every full-replacement widget; hosts feed
// it via Viewport. Widgets are looked up later with Lookup for method-style
// calls (Resize, Sync, Refresh) on an already-attached control.
//
// Typeahead search by keystroke is deliberately not implemented.
package dropdown
