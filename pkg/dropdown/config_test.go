package dropdown

import (
	"errors"
	"testing"
)

func TestResolveConfigRequiresIconBase(t *testing.T) {
	src := specimenSelect()

	_, err := resolveConfig(src, Options{}, DefaultStyles())
	var missing *MissingRequiredOptionError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingRequiredOptionError", err)
	}
	if missing.Option != "IconBase" {
		t.Errorf("Option = %q, want IconBase", missing.Option)
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	src := specimenSelect()

	cfg, err := resolveConfig(src, Options{IconBase: "assets"}, DefaultStyles())
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.separator {
		t.Error("separator should default on")
	}
	if cfg.fullReplace || cfg.multiline {
		t.Error("mode flags default off")
	}
}

func TestAttributeOverridesProgrammaticFlag(t *testing.T) {
	tests := []struct {
		name      string
		attr      string
		attrValue string
		opts      Options
		wantFull  bool
		wantMulti bool
	}{
		{
			name:      "truthy attribute wins over false flag",
			attr:      AttrFullReplace,
			attrValue: TruthyToken,
			opts:      Options{IconBase: "assets"},
			wantFull:  true,
		},
		{
			name:      "unrecognized token leaves flag in force",
			attr:      AttrFullReplace,
			attrValue: "yes",
			opts:      Options{IconBase: "assets"},
			wantFull:  false,
		},
		{
			name:      "attribute cannot turn a true flag off",
			attr:      AttrFullReplace,
			attrValue: "false",
			opts:      Options{IconBase: "assets", FullReplace: true},
			wantFull:  true,
		},
		{
			name:      "multiline attribute",
			attr:      AttrMultiline,
			attrValue: TruthyToken,
			opts:      Options{IconBase: "assets"},
			wantMulti: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := specimenSelect()
			src.SetAttr(tt.attr, tt.attrValue)

			cfg, err := resolveConfig(src, tt.opts, DefaultStyles())
			if err != nil {
				t.Fatal(err)
			}
			if cfg.fullReplace != tt.wantFull {
				t.Errorf("fullReplace = %v, want %v", cfg.fullReplace, tt.wantFull)
			}
			if cfg.multiline != tt.wantMulti {
				t.Errorf("multiline = %v, want %v", cfg.multiline, tt.wantMulti)
			}
		})
	}
}
