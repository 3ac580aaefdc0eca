package form

// Widget is a UI behavior with an explicit lifecycle: Mount attaches its
// event handlers and returns a disposer that detaches them again.
type Widget interface {
	Mount() (func(), error)
}

// App owns the page's widgets. It replaces the ambient global the original
// site hung off the window object: construction is explicit, and Close
// unwinds everything Mount set up.
type App struct {
	widgets   []Widget
	disposers []func()
}

// NewApp composes an application from its widgets. Nothing is mounted yet.
func NewApp(widgets ...Widget) *App {
	return &App{widgets: widgets}
}

// Init mounts every widget in order. On failure, already-mounted widgets
// are disposed before the error is returned.
func (a *App) Init() error {
	for _, w := range a.widgets {
		dispose, err := w.Mount()
		if err != nil {
			a.Close()
			return err
		}
		a.disposers = append(a.disposers, dispose)
	}
	return nil
}

// Close disposes mounted widgets in reverse mount order.
func (a *App) Close() {
	for i := len(a.disposers) - 1; i >= 0; i-- {
		a.disposers[i]()
	}
	a.disposers = nil
}
