package server

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"defterm/internal/content"
	"defterm/internal/metrics"
	"defterm/internal/system"
	"defterm/internal/term"
	webembed "defterm/internal/webui/embed"
)

// Server serves the terminal page, its websocket and the blog API.
type Server struct {
	Addr    string
	Profile term.Profile
	// Posts is optional; the post routes answer 404 without it.
	Posts *content.Collection
	Log   *clog.Logger
}

func (s *Server) logger() *clog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return system.Component("web")
}

// Handler builds the gin engine with every route mounted.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	s.mountAPIGin(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	mountEmbeddedUIGin(r)
	return r
}

// Start listens on Addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.logger().Info("web server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func (s *Server) mountAPIGin(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", healthHandler)
	api.GET("/version", versionHandler)
	api.GET("/commands", commandsHandler)

	// Blog
	api.GET("/posts", s.postsHandler)
	api.GET("/posts/:slug", s.postHandler)

	// Terminal (WebSocket widget)
	api.GET("/term/ws", s.terminalWSHandler)
}

// mountEmbeddedUIGin serves the embedded page at all non-/api GET routes
// with index fallback.
func mountEmbeddedUIGin(r *gin.Engine) {
	dist, err := fs.Sub(webembed.DistFS, "dist")
	if err != nil {
		r.NoRoute(func(c *gin.Context) {
			c.String(http.StatusNotFound, "web assets not found")
		})
		return
	}
	index, indexErr := fs.ReadFile(dist, "index.html")
	serveIndex := func(c *gin.Context) {
		if indexErr != nil {
			c.String(http.StatusNotFound, "index.html not found in embedded dist.")
			return
		}
		// written directly: http.FileServer redirects /index.html to ./
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	}
	httpFS := http.FS(dist)
	r.NoRoute(func(c *gin.Context) {
		// Do not hijack API routes
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			writeJSON(c, http.StatusNotFound, errors.New("not found"))
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if p == "" || p == "index.html" {
			serveIndex(c)
			return
		}
		if f, err := httpFS.Open(p); err == nil {
			_ = f.Close()
			if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
				c.Header("Content-Type", ct)
			}
			c.FileFromFS(p, httpFS)
			return
		}
		serveIndex(c)
	})
}
