// Package widget wires a term.Session to an input surface. A Controller owns
// the session, the live line and the event handlers bound to the surface;
// a Host owns at most one Controller.
package widget

import (
	"errors"

	clog "github.com/charmbracelet/log"

	"defterm/internal/metrics"
	"defterm/internal/term"
)

// ErrNoSurface is returned when a controller is created without an input
// surface to bind to.
var ErrNoSurface = errors.New("widget: no input surface")

// Key is one of the keys the widget reacts to. Everything else is an edit of
// the live line and stays with the surface.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyUp
	KeyDown
	KeyTab
)

var keyNames = map[string]Key{
	"Enter":     KeyEnter,
	"ArrowUp":   KeyUp,
	"ArrowDown": KeyDown,
	"Tab":       KeyTab,
}

// ParseKey maps a DOM-style key name to a Key.
func ParseKey(name string) Key {
	return keyNames[name]
}

// Handlers are the callbacks a surface invokes. OnKey receives the live line
// as the surface currently holds it.
type Handlers struct {
	OnKey    func(k Key, value string)
	OnClick  func()
	OnResize func()
}

// Surface is a front end's input element.
type Surface interface {
	// Bind installs handlers and returns the func that removes them.
	Bind(h Handlers) (unbind func())
	// SetValue replaces the live line shown to the user.
	SetValue(v string)
	Focus()
}

type bindState int

const (
	unbound bindState = iota
	bound
)

// Controller drives one session from one surface. It is not safe for
// concurrent use.
type Controller struct {
	surface  Surface
	session  *term.Session
	frontend string
	log      *clog.Logger
	host     *Host

	state       bindState
	unbind      func()
	initialized bool
	input       string
}

// Session returns the controlled session.
func (c *Controller) Session() *term.Session { return c.session }

// Input returns the live line.
func (c *Controller) Input() string { return c.input }

// Initialize binds the handlers and focuses the surface. Calling it again
// while initialized does nothing.
func (c *Controller) Initialize() {
	if c.initialized {
		return
	}
	c.unbindHandlers()
	c.bindHandlers()
	c.surface.Focus()
	c.initialized = true
	c.log.Debug("widget initialized")
}

// Destroy removes the handlers and detaches the controller from its host,
// so the host's next Create builds a fresh one. A destroyed controller can
// still be initialized again on its own.
func (c *Controller) Destroy() {
	c.unbindHandlers()
	c.initialized = false
	if c.host != nil && c.host.current == c {
		c.host.current = nil
	}
}

func (c *Controller) bindHandlers() {
	if c.state == bound {
		return
	}
	c.unbind = c.surface.Bind(Handlers{
		OnKey:    c.HandleKey,
		OnClick:  c.surface.Focus,
		OnResize: c.surface.Focus,
	})
	c.state = bound
	metrics.WidgetBound(c.frontend, 1)
}

func (c *Controller) unbindHandlers() {
	if c.state == unbound {
		return
	}
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
	c.state = unbound
	metrics.WidgetBound(c.frontend, -1)
}

// HandleKey processes one recognised key with the surface's current live
// line. KeyOther only records the line.
func (c *Controller) HandleKey(k Key, value string) {
	c.input = value
	switch k {
	case KeyEnter:
		out := c.session.Submit(value)
		if out.Command != "" {
			metrics.RecordCommand(out.Command, out.Known)
			c.log.Debug("dispatched", "command", out.Command, "known", out.Known)
		}
		c.setInput("")
		c.surface.Focus()
	case KeyUp:
		c.setInput(c.session.Navigate(-1))
	case KeyDown:
		c.setInput(c.session.Navigate(1))
	case KeyTab:
		completed, ok := c.session.Complete(value)
		metrics.RecordCompletion(ok)
		if ok {
			c.setInput(completed)
		}
	}
}

func (c *Controller) setInput(v string) {
	c.input = v
	c.surface.SetValue(v)
}

// Host owns at most one controller, standing in for the page that embeds
// the widget.
type Host struct {
	frontend string
	log      *clog.Logger
	opts     []term.Option
	current  *Controller
}

// NewHost returns an empty host. frontend labels the controllers it creates
// in logs and metrics; opts configure every new session.
func NewHost(frontend string, log *clog.Logger, opts ...term.Option) *Host {
	return &Host{
		frontend: frontend,
		log:      log.With("frontend", frontend),
		opts:     opts,
	}
}

// Create returns the existing controller if there is one. Otherwise it
// builds a session bound to s and initializes it. A nil surface is logged
// and reported as ErrNoSurface.
func (h *Host) Create(s Surface) (*Controller, error) {
	if h.current != nil {
		return h.current, nil
	}
	if s == nil {
		h.log.Error("cannot create widget", "err", ErrNoSurface)
		return nil, ErrNoSurface
	}
	c := &Controller{
		surface:  s,
		session:  term.NewSession(h.opts...),
		frontend: h.frontend,
		log:      h.log,
		host:     h,
	}
	c.Initialize()
	h.current = c
	return c, nil
}

// Current returns the live controller or nil.
func (h *Host) Current() *Controller { return h.current }

// Destroy tears down the current controller so the next Create builds a
// fresh one.
func (h *Host) Destroy() {
	if h.current != nil {
		h.current.Destroy()
	}
}
