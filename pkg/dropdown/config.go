package dropdown

import "github.com/charmbracelet/lipgloss"

// Declarative attributes on the control. When set to TruthyToken they
// override the corresponding programmatic option at attach time.
const (
	AttrFullReplace = "data-full-replace"
	AttrMultiline   = "data-multiline"

	// TruthyToken is the recognized attribute value; anything else leaves
	// the programmatic option in force.
	TruthyToken = "true"
)

// Options is the attach-time configuration. IconBase is required; everything
// else is optional.
type Options struct {
	// IconBase is the base path of the indicator glyph assets. Required.
	IconBase string

	// ExtraStyles are layered onto the face style in order, later entries
	// overriding earlier ones.
	ExtraStyles []lipgloss.Style

	// Height overrides the measured control height when positive.
	Height int

	// DisableSeparator turns off the border between the text surface and
	// the indicator. The separator is on by default.
	DisableSeparator bool

	// ZIndex orders overlapping overlays in hosts that composite layers.
	ZIndex int

	// FullReplace re-renders the whole option list as custom markup. When
	// false the widget runs in overlay-only mode: it mirrors the control's
	// value into the face text and handles no interaction itself.
	FullReplace bool

	// Multiline keeps embedded markup in option display text and renders
	// it instead of truncating to one line.
	Multiline bool
}

// effectiveConfig is the single immutable configuration produced by the
// two-source resolution at attach time and consumed thereafter.
type effectiveConfig struct {
	iconBase    string
	faceStyle   lipgloss.Style
	height      int
	separator   bool
	zIndex      int
	fullReplace bool
	multiline   bool
}

// resolveConfig merges programmatic options with the control's declarative
// attributes. An attribute set to the truthy token wins over the
// programmatic flag; any other attribute value is ignored. Runs exactly once
// per attach.
func resolveConfig(src *Select, opts Options, base Styles) (effectiveConfig, error) {
	if opts.IconBase == "" {
		return effectiveConfig{}, &MissingRequiredOptionError{Option: "IconBase"}
	}

	cfg := effectiveConfig{
		iconBase:    opts.IconBase,
		height:      opts.Height,
		separator:   !opts.DisableSeparator,
		zIndex:      opts.ZIndex,
		fullReplace: opts.FullReplace,
		multiline:   opts.Multiline,
	}
	if src.Attr(AttrFullReplace) == TruthyToken {
		cfg.fullReplace = true
	}
	if src.Attr(AttrMultiline) == TruthyToken {
		cfg.multiline = true
	}

	cfg.faceStyle = base.Face
	for _, extra := range opts.ExtraStyles {
		cfg.faceStyle = extra.Inherit(cfg.faceStyle)
	}
	return cfg, nil
}
