package dropdown

import "sync"

// Registry owns the control→widget mapping and the process-wide shared
// viewport watcher. Each control maps to at most one widget; the watcher is
// installed once for any number of full-replacement widgets, at the 0→1
// refcount transition, and removed again at 1→0.
//
// Attach and Close may be called from any goroutine; each widget itself is
// single-threaded.
type Registry struct {
	mu        sync.Mutex
	widgets   map[*Select]*Widget
	watchers  int // refcount of full-replacement widgets
	install   func()
	uninstall func()
	viewportW int
	viewportH int
}

// NewRegistry creates an empty registry with a default viewport.
func NewRegistry() *Registry {
	return &Registry{
		widgets:   make(map[*Select]*Widget),
		viewportW: 80,
		viewportH: 24,
	}
}

// defaultRegistry backs the package-level Attach/Lookup/Viewport functions.
var defaultRegistry = NewRegistry()

// SetWatcherHooks installs the callbacks invoked when the shared viewport
// watcher is needed (first full-replacement widget attached) and when it is
// no longer (last one closed). Hosts hook their resize subscription here.
func (r *Registry) SetWatcherHooks(install, uninstall func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.install = install
	r.uninstall = uninstall
}

// WatcherActive reports whether the shared viewport watcher is installed.
func (r *Registry) WatcherActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.watchers > 0
}

// Lookup returns the widget attached to src, for method-style re-invocation
// on an already-initialized control.
func (r *Registry) Lookup(src *Select) (*Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.widgets[src]
	return w, ok
}

// Viewport records a new viewport size and recomputes the option-list cap of
// every attached full-replacement widget in one pass. This is the single
// shared resize path; widgets never watch the viewport individually.
func (r *Registry) Viewport(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewportW = width
	r.viewportH = height
	for _, w := range r.widgets {
		if w.cfg.fullReplace {
			w.relayout(height)
		}
	}
}

func (r *Registry) viewportHeight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewportH
}

// add registers a widget and bumps the watcher refcount for full-replacement
// widgets, installing the shared watcher on 0→1.
func (r *Registry) add(w *Widget) {
	r.mu.Lock()
	r.widgets[w.src] = w
	var install func()
	if w.cfg.fullReplace {
		r.watchers++
		if r.watchers == 1 {
			install = r.install
		}
	}
	r.mu.Unlock()
	if install != nil {
		install()
	}
}

// remove drops a widget and decrements the watcher refcount, removing the
// shared watcher on 1→0.
func (r *Registry) remove(w *Widget) {
	r.mu.Lock()
	delete(r.widgets, w.src)
	var uninstall func()
	if w.cfg.fullReplace {
		r.watchers--
		if r.watchers == 0 {
			uninstall = r.uninstall
		}
	}
	r.mu.Unlock()
	if uninstall != nil {
		uninstall()
	}
}

// Lookup finds the widget attached to src in the default registry.
func Lookup(src *Select) (*Widget, bool) {
	return defaultRegistry.Lookup(src)
}

// Viewport reports a viewport change to the default registry.
func Viewport(width, height int) {
	defaultRegistry.Viewport(width, height)
}
