package widget

// BufferedSurface is a Surface for front ends that cannot apply writes
// immediately. Handlers run synchronously; the front end feeds events in
// with Press, Click and Resize, then collects what the controller wrote with
// Drain.
type BufferedSurface struct {
	handlers *Handlers
	value    string
	setValue bool
	focus    bool
}

func (s *BufferedSurface) Bind(h Handlers) func() {
	s.handlers = &h
	return func() { s.handlers = nil }
}

func (s *BufferedSurface) SetValue(v string) {
	s.value = v
	s.setValue = true
}

func (s *BufferedSurface) Focus() { s.focus = true }

// Bound reports whether handlers are installed.
func (s *BufferedSurface) Bound() bool { return s.handlers != nil }

// Press delivers a key with the live line the front end holds. It does
// nothing while unbound.
func (s *BufferedSurface) Press(k Key, value string) {
	if s.handlers != nil {
		s.handlers.OnKey(k, value)
	}
}

// Click delivers a click on the window.
func (s *BufferedSurface) Click() {
	if s.handlers != nil {
		s.handlers.OnClick()
	}
}

// Resize delivers a resize of the window.
func (s *BufferedSurface) Resize() {
	if s.handlers != nil {
		s.handlers.OnResize()
	}
}

// Drain returns the pending writes and clears them. set is false when the
// live line was not replaced.
func (s *BufferedSurface) Drain() (value string, set, focus bool) {
	value, set, focus = s.value, s.setValue, s.focus
	s.setValue, s.focus = false, false
	return value, set, focus
}
