package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attachTest(t *testing.T, reg *Registry, opts Options) *Widget {
	t.Helper()
	opts.IconBase = t.TempDir()
	w, err := AttachTo(reg, specimenSelect(), opts)
	require.NoError(t, err)
	return w
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()
	src := specimenSelect()
	w, err := AttachTo(reg, src, Options{IconBase: t.TempDir(), FullReplace: true})
	require.NoError(t, err)

	got, ok := reg.Lookup(src)
	assert.True(t, ok)
	assert.Same(t, w, got)

	w.Close()
	_, ok = reg.Lookup(src)
	assert.False(t, ok, "closed widget should leave the mapping")
}

func TestWatcherRefcount(t *testing.T) {
	reg := NewRegistry()
	installs, uninstalls := 0, 0
	reg.SetWatcherHooks(
		func() { installs++ },
		func() { uninstalls++ },
	)

	// Overlay-only widgets never need the watcher.
	overlay := attachTest(t, reg, Options{})
	assert.Equal(t, 0, installs)
	assert.False(t, reg.WatcherActive())

	// First full-replacement widget installs it; further ones do not.
	first := attachTest(t, reg, Options{FullReplace: true})
	second := attachTest(t, reg, Options{FullReplace: true})
	assert.Equal(t, 1, installs, "watcher installed exactly once")
	assert.True(t, reg.WatcherActive())

	// Removed only at the 1→0 transition.
	first.Close()
	assert.Equal(t, 0, uninstalls)
	second.Close()
	assert.Equal(t, 1, uninstalls)
	assert.False(t, reg.WatcherActive())

	overlay.Close()
	assert.Equal(t, 1, uninstalls)

	// A new full-replacement widget re-installs.
	third := attachTest(t, reg, Options{FullReplace: true})
	assert.Equal(t, 2, installs)
	third.Close()
}

func TestViewportFansOutToAllInstances(t *testing.T) {
	reg := NewRegistry()

	widgets := make([]*Widget, 0, 50)
	for i := 0; i < 50; i++ {
		widgets = append(widgets, attachTest(t, reg, Options{FullReplace: true}))
	}

	reg.Viewport(120, 48)
	for i, w := range widgets {
		assert.Equal(t, 24, w.ListMaxHeight(), "widget %d cap should be half the viewport", i)
	}

	reg.Viewport(120, 31)
	for _, w := range widgets {
		assert.Equal(t, 15, w.ListMaxHeight())
	}
}

func TestViewportSkipsOverlayOnlyWidgets(t *testing.T) {
	reg := NewRegistry()
	overlay := attachTest(t, reg, Options{})
	before := overlay.ListMaxHeight()

	reg.Viewport(200, 100)
	assert.Equal(t, before, overlay.ListMaxHeight(), "overlay-only widgets have no list to cap")
}

func TestCloseIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	uninstalls := 0
	reg.SetWatcherHooks(func() {}, func() { uninstalls++ })

	w := attachTest(t, reg, Options{FullReplace: true})
	w.Close()
	w.Close()
	assert.Equal(t, 1, uninstalls)
}
