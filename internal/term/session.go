// Package term implements the simulated shell: parsing a line, dispatching it
// to a built-in command, history navigation, autocompletion and the
// scrollback the commands write to.
//
// A Session is not safe for concurrent use. Front ends drive it from a
// single event loop.
package term

import (
	"strings"
	"time"

	"defterm/internal/history"
	"defterm/internal/vfs"
)

// HomeDir is the display-only working directory. cd never changes it.
const HomeDir = "~"

// Session is the runtime state of one terminal widget.
type Session struct {
	root    *vfs.Node
	profile Profile
	hist    history.Buffer
	out     Scrollback
	cwd     string
	started time.Time
	now     func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithRoot replaces the portfolio tree.
func WithRoot(root *vfs.Node) Option {
	return func(s *Session) { s.root = root }
}

// WithProfile sets the identity; empty fields keep their defaults.
func WithProfile(p Profile) Option {
	return func(s *Session) { s.profile = p.Merge(DefaultProfile) }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession returns a session whose scrollback holds the welcome banner.
func NewSession(opts ...Option) *Session {
	s := &Session{
		root:    vfs.Portfolio(),
		profile: DefaultProfile,
		cwd:     HomeDir,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.started = s.now()
	s.banner()
	return s
}

// Outcome reports what Submit did.
type Outcome struct {
	// Command is the parsed command name; empty when the line was blank.
	Command string
	// Known is false for names missing from the command table.
	Known bool
}

// Submit runs one input line. A blank line does nothing. Otherwise the
// prompt echo is written, then the command output (or the not-found
// message), and finally the line is recorded in history.
func (s *Session) Submit(raw string) Outcome {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Outcome{}
	}
	name, args := parse(input)
	s.echo(input)

	id, ok := Lookup(name)
	if ok {
		s.run(id, args)
	} else {
		s.out.Append(
			styled(Error, s.profile.Shell+": "+name+": command not found"),
			styled(Hint, "Type 'help' to see available commands"),
		)
	}
	s.hist.Push(input)
	return Outcome{Command: name, Known: ok}
}

// Navigate walks history (-1 older, +1 newer) and returns the line to show.
func (s *Session) Navigate(dir int) string { return s.hist.Navigate(dir) }

// Complete autocompletes a partial command name. A single match is returned
// with ok=true. Several matches are printed to the scrollback, space
// separated, and the input is returned unchanged.
func (s *Session) Complete(partial string) (string, bool) {
	p := strings.TrimSpace(partial)
	matches := Matches(p)
	switch len(matches) {
	case 0:
		return partial, false
	case 1:
		return matches[0], true
	default:
		s.out.Append(styled(Info, strings.Join(matches, "  ")))
		return partial, false
	}
}

// Scrollback returns the output log.
func (s *Session) Scrollback() *Scrollback { return &s.out }

// History returns the submitted lines, oldest first.
func (s *Session) History() []string { return s.hist.Entries() }

// Cwd returns the display directory.
func (s *Session) Cwd() string { return s.cwd }

// Profile returns the identity in use.
func (s *Session) Profile() Profile { return s.profile }

// Uptime is the time since the session was created.
func (s *Session) Uptime() time.Duration { return s.now().Sub(s.started) }

func (s *Session) banner() {
	s.out.Append(
		styled(Info, s.profile.Shell),
		styled(Hint, "Type 'help' to see available commands"),
		styled(Plain, strings.Repeat("─", 49)),
	)
}

func (s *Session) echo(input string) {
	s.out.Append(
		line(
			span(Prompt, "┌──("),
			span(Accent, s.profile.User),
			span(Prompt, "@"),
			span(Accent, s.profile.Host),
			span(Prompt, ")-["),
			span(Plain, s.cwd),
			span(Prompt, "]"),
		),
		line(span(Prompt, "└─$ "), span(Plain, input)),
	)
}
