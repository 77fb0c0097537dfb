package dropdown

import "testing"

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name           string
		box            Box
		heightOverride int
		iconWidth      int
		viewportH      int
		want           Layout
	}{
		{
			name:      "measured box",
			box:       Box{Width: 30, Height: 1},
			iconWidth: 1,
			viewportH: 40,
			want:      Layout{OuterWidth: 30, OuterHeight: 1, IconWidth: 1, FaceTextWidth: 27, ListMaxHeight: 20},
		},
		{
			name:           "explicit height override wins",
			box:            Box{Width: 30, Height: 1},
			heightOverride: 3,
			iconWidth:      1,
			viewportH:      40,
			want:           Layout{OuterWidth: 30, OuterHeight: 3, IconWidth: 1, FaceTextWidth: 27, ListMaxHeight: 20},
		},
		{
			name:      "list cap is half the viewport",
			box:       Box{Width: 20, Height: 1},
			iconWidth: 1,
			viewportH: 25,
			want:      Layout{OuterWidth: 20, OuterHeight: 1, IconWidth: 1, FaceTextWidth: 17, ListMaxHeight: 12},
		},
		{
			name:      "degenerate box clamps to zero text width",
			box:       Box{Width: 2, Height: 0},
			iconWidth: 2,
			viewportH: 1,
			want:      Layout{OuterWidth: 2, OuterHeight: 1, IconWidth: 2, FaceTextWidth: 0, ListMaxHeight: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(tt.box, tt.heightOverride, tt.iconWidth, tt.viewportH)
			if got != tt.want {
				t.Errorf("ComputeLayout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIconWidth(t *testing.T) {
	tests := []struct {
		glyph string
		want  int
	}{
		{"▾", 1},
		{"->", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := IconWidth(tt.glyph); got != tt.want {
			t.Errorf("IconWidth(%q) = %d, want %d", tt.glyph, got, tt.want)
		}
	}
}
