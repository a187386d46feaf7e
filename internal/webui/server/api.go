package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"defterm/internal/content"
	"defterm/internal/term"
	appver "defterm/internal/version"
)

var errNoPosts = errors.New("no content collection configured")

func healthHandler(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

func versionHandler(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]string{"version": appver.AppVersion})
}

func commandsHandler(c *gin.Context) {
	writeJSON(c, http.StatusOK, term.Commands())
}

type postSummary struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Tags        []string  `json:"tags,omitempty"`
	Image       string    `json:"image,omitempty"`
}

func summarize(p content.Post) postSummary {
	return postSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date.Time,
		Tags:        p.Tags,
		Image:       p.Image,
	}
}

// postsHandler lists published posts, newest first; ?q= filters with a
// fuzzy search.
func (s *Server) postsHandler(c *gin.Context) {
	if s.Posts == nil {
		writeJSON(c, http.StatusNotFound, errNoPosts)
		return
	}
	var posts []content.Post
	if q := c.Query("q"); q != "" {
		posts = s.Posts.Search(q)
	} else {
		posts = s.Posts.List(false)
	}
	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, summarize(p))
	}
	writeJSON(c, http.StatusOK, out)
}

type postDetail struct {
	postSummary
	HTML string `json:"html"`
}

func (s *Server) postHandler(c *gin.Context) {
	if s.Posts == nil {
		writeJSON(c, http.StatusNotFound, errNoPosts)
		return
	}
	p, ok := s.Posts.Get(c.Param("slug"))
	if !ok || p.Draft {
		writeJSON(c, http.StatusNotFound, errors.New("post not found"))
		return
	}
	html, err := content.RenderHTML(p)
	if err != nil {
		writeJSON(c, http.StatusInternalServerError, err)
		return
	}
	writeJSON(c, http.StatusOK, postDetail{postSummary: summarize(p), HTML: html})
}

// writeJSON replies with v; an error value becomes {"error": "..."}.
func writeJSON(c *gin.Context, code int, v any) {
	if err, ok := v.(error); ok {
		c.JSON(code, errJSON(err))
		return
	}
	c.JSON(code, v)
}

func errJSON(err error) map[string]string { return map[string]string{"error": err.Error()} }
