// Package sshd serves the terminal widget over SSH. Interactive sessions get
// a line editor; exec requests run one command and exit.
package sshd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/crypto/ssh"

	"defterm/internal/system"
	"defterm/internal/term"
	"defterm/internal/theme"
	appver "defterm/internal/version"
	"defterm/internal/widget"
)

// DefaultMaxSessions caps concurrent connections when Server.MaxSessions is
// zero.
const DefaultMaxSessions = 32

// Server accepts SSH connections. Any user is let in without credentials.
type Server struct {
	Addr        string
	HostKeyPath string
	Profile     term.Profile
	MaxSessions int
	Log         *clog.Logger
}

func (s *Server) logger() *clog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return system.Component("ssh")
}

// Start listens on Addr and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, which closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	signer, err := LoadOrGenerateHostKey(s.HostKeyPath)
	if err != nil {
		return fmt.Errorf("host key: %w", err)
	}
	cfg := &ssh.ServerConfig{
		NoClientAuth:  true,
		ServerVersion: "SSH-2.0-defterm_" + appver.AppVersion,
		PasswordCallback: func(ssh.ConnMetadata, []byte) (*ssh.Permissions, error) {
			return &ssh.Permissions{}, nil
		},
		PublicKeyCallback: func(ssh.ConnMetadata, ssh.PublicKey) (*ssh.Permissions, error) {
			return &ssh.Permissions{}, nil
		},
	}
	cfg.AddHostKey(signer)

	limit := s.MaxSessions
	if limit <= 0 {
		limit = DefaultMaxSessions
	}
	sem := make(chan struct{}, limit)
	log := s.logger()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()
	log.Info("ssh server listening", "addr", ln.Addr().String(),
		"fingerprint", ssh.FingerprintSHA256(signer.PublicKey()))

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		select {
		case sem <- struct{}{}:
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				s.handleConn(ctx, conn, cfg)
			}()
		default:
			log.Warn("connection limit reached", "remote", conn.RemoteAddr().String())
			_ = conn.Close()
		}
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn, cfg *ssh.ServerConfig) {
	defer conn.Close()
	sshConn, chans, reqs, err := ssh.NewServerConn(conn, cfg)
	if err != nil {
		s.logger().Debug("handshake failed", "remote", conn.RemoteAddr().String(), "err", err)
		return
	}
	defer sshConn.Close()
	go ssh.DiscardRequests(reqs)

	// closing the connection unblocks the channel loop on shutdown
	stop := context.AfterFunc(ctx, func() { _ = sshConn.Close() })
	defer stop()

	log := s.logger().With("remote", sshConn.RemoteAddr().String(), "user", sshConn.User())
	log.Info("connected")
	for nc := range chans {
		if nc.ChannelType() != "session" {
			_ = nc.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		ch, chReqs, err := nc.Accept()
		if err != nil {
			break
		}
		go s.handleSession(ctx, ch, chReqs, log)
	}
	log.Info("disconnected")
}

type ptyRequest struct {
	Term    string
	Columns uint32
	Rows    uint32
	Width   uint32
	Height  uint32
	Modes   string
}

type windowChange struct {
	Columns uint32
	Rows    uint32
	Width   uint32
	Height  uint32
}

type execRequest struct {
	Command string
}

type exitStatus struct {
	Status uint32
}

func (s *Server) handleSession(ctx context.Context, ch ssh.Channel, reqs <-chan *ssh.Request, log *clog.Logger) {
	defer ch.Close()

	termName, cols := "", 0
	resizes := make(chan int, 1)
	var shellDone chan struct{}

	for req := range reqs {
		switch req.Type {
		case "pty-req":
			var p ptyRequest
			if err := ssh.Unmarshal(req.Payload, &p); err != nil {
				_ = req.Reply(false, nil)
				continue
			}
			termName, cols = p.Term, int(p.Columns)
			_ = req.Reply(true, nil)
		case "env":
			_ = req.Reply(true, nil)
		case "window-change":
			var w windowChange
			if err := ssh.Unmarshal(req.Payload, &w); err == nil {
				// keep only the latest size
				select {
				case <-resizes:
				default:
				}
				resizes <- int(w.Columns)
			}
			if req.WantReply {
				_ = req.Reply(true, nil)
			}
		case "shell":
			if shellDone != nil {
				_ = req.Reply(false, nil)
				continue
			}
			_ = req.Reply(true, nil)
			shellDone = make(chan struct{})
			go func(termName string, cols int) {
				defer close(shellDone)
				s.runShell(ctx, ch, termName, cols, resizes, log)
				sendExit(ch, 0)
				_ = ch.Close()
			}(termName, cols)
		case "exec":
			var e execRequest
			if err := ssh.Unmarshal(req.Payload, &e); err != nil {
				_ = req.Reply(false, nil)
				continue
			}
			_ = req.Reply(true, nil)
			log.Info("exec", "command", e.Command)
			sendExit(ch, s.runExec(ch, e.Command, log))
			return
		default:
			if req.WantReply {
				_ = req.Reply(false, nil)
			}
		}
	}
	if shellDone != nil {
		<-shellDone
	}
}

func sendExit(ch ssh.Channel, code uint32) {
	_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(exitStatus{Status: code}))
}

// runShell hosts one widget on the channel until the client leaves.
func (s *Server) runShell(ctx context.Context, ch ssh.Channel, termName string, cols int, resizes <-chan int, log *clog.Logger) {
	surf := &widget.BufferedSurface{}
	host := widget.NewHost("ssh", log, term.WithProfile(s.Profile))
	ctrl, err := host.Create(surf)
	if err != nil {
		return
	}
	defer host.Destroy()

	sh := newShell(ch, ctrl, surf, theme.NewStyles(renderer(ch, colorProfile(termName))), cols)

	done := make(chan struct{})
	defer close(done)
	runes := make(chan rune, 64)
	go func() {
		defer close(runes)
		br := bufio.NewReader(ch)
		for {
			c, _, err := br.ReadRune()
			if err != nil {
				return
			}
			select {
			case runes <- c:
			case <-done:
				return
			}
		}
	}()
	sh.run(ctx, runes, resizes)
}

// runExec dispatches a single line and writes only its output. Unknown
// commands exit with 127.
func (s *Server) runExec(ch ssh.Channel, line string, log *clog.Logger) uint32 {
	surf := &widget.BufferedSurface{}
	host := widget.NewHost("ssh", log, term.WithProfile(s.Profile))
	ctrl, err := host.Create(surf)
	if err != nil {
		return 1
	}
	defer host.Destroy()

	sb := ctrl.Session().Scrollback()
	epoch, before := sb.Epoch(), sb.Len()
	surf.Press(widget.KeyEnter, line)

	var out []term.Line
	switch {
	case sb.Epoch() != epoch:
		out = sb.Lines()
	case sb.Len() >= before+2:
		// skip the prompt echo
		out = sb.Lines()[before+2:]
	}
	styles := theme.NewStyles(renderer(ch, termenv.Ascii))
	var b strings.Builder
	for _, l := range out {
		b.WriteString(styles.RenderLine(l))
		b.WriteString("\r\n")
	}
	_, _ = ch.Write([]byte(b.String()))

	if f := strings.Fields(line); len(f) > 0 {
		if _, ok := term.Lookup(f[0]); !ok {
			return 127
		}
	}
	return 0
}

// renderer builds a lipgloss renderer bound to one session.
func renderer(w io.Writer, p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(p))
	r.SetColorProfile(p)
	return r
}

// colorProfile picks the color depth for a TERM value.
func colorProfile(termName string) termenv.Profile {
	switch {
	case termName == "" || termName == "dumb":
		return termenv.Ascii
	case strings.Contains(termName, "truecolor"), strings.Contains(termName, "direct"):
		return termenv.TrueColor
	case strings.Contains(termName, "256color"):
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}
