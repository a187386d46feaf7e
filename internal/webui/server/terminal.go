package server

import (
	"encoding/json"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"defterm/internal/term"
	"defterm/internal/widget"
)

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Allow all origins for local dev; the server typically binds to localhost.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientFrame is what the page sends: a recognised key with the live line,
// a plain edit of the live line, a click or a resize.
type clientFrame struct {
	Type  string `json:"type"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// renderFrame carries the scrollback lines appended since the previous
// frame, or all of them when Reset is set.
type renderFrame struct {
	Type  string   `json:"type"`
	Reset bool     `json:"reset"`
	Lines []string `json:"lines"`
	Input string   `json:"input"`
	Focus bool     `json:"focus"`
}

// terminalWSHandler hosts one widget per connection.
//
// Client protocol:
//   - {"type":"key","key":"Enter|ArrowUp|ArrowDown|Tab","value":"<live line>"}
//   - {"type":"input","value":"<live line>"}
//   - {"type":"click"} and {"type":"resize"}
//
// The server answers with render frames whenever the scrollback, the live
// line or the focus changed.
func (s *Server) terminalWSHandler(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		return
	}
	defer conn.Close()

	log := s.logger().With("remote", c.ClientIP())
	surf := &widget.BufferedSurface{}
	host := widget.NewHost("web", log, term.WithProfile(s.Profile))
	ctrl, err := host.Create(surf)
	if err != nil {
		return
	}
	defer host.Destroy()
	log.Debug("terminal connected")

	st := &streamState{epoch: -1}
	send := func() error {
		f, ok := st.next(ctrl, surf)
		if !ok {
			return nil
		}
		return conn.WriteJSON(f)
	}
	if err := send(); err != nil {
		return
	}

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			// client closed
			break
		}
		if mt != websocket.TextMessage {
			continue
		}
		var f clientFrame
		if err := json.Unmarshal(data, &f); err != nil {
			log.Debug("bad frame", "err", err)
			continue
		}
		switch f.Type {
		case "key":
			surf.Press(widget.ParseKey(f.Key), f.Value)
		case "input":
			surf.Press(widget.KeyOther, f.Value)
		case "click":
			surf.Click()
		case "resize":
			surf.Resize()
		default:
			continue
		}
		if err := send(); err != nil {
			break
		}
	}
	log.Debug("terminal disconnected")
}

// streamState tracks what the client has already seen.
type streamState struct {
	epoch int
	count int
}

// next builds the frame for the changes since the last call. ok is false
// when there is nothing to send.
func (st *streamState) next(ctrl *widget.Controller, surf *widget.BufferedSurface) (renderFrame, bool) {
	sb := ctrl.Session().Scrollback()
	lines := sb.Lines()
	_, set, focus := surf.Drain()

	f := renderFrame{Type: "render", Input: ctrl.Input(), Focus: focus}
	if sb.Epoch() != st.epoch || len(lines) < st.count {
		f.Reset = true
		st.epoch, st.count = sb.Epoch(), 0
	}
	for _, l := range lines[st.count:] {
		f.Lines = append(f.Lines, lineHTML(l))
	}
	st.count = len(lines)
	if !f.Reset && len(f.Lines) == 0 && !set && !focus {
		return f, false
	}
	if f.Lines == nil {
		f.Lines = []string{}
	}
	return f, true
}

// lineHTML renders a line as escaped spans classed by style.
func lineHTML(l term.Line) string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(`<span class="t-`)
		b.WriteString(sp.Style.String())
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(sp.Text))
		b.WriteString(`</span>`)
	}
	return b.String()
}
