package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	fsnotify "github.com/fsnotify/fsnotify"
	"github.com/sahilm/fuzzy"

	"defterm/internal/metrics"
)

// Collection is the set of posts under one directory. It is safe for
// concurrent use; Watch reloads it in the background.
type Collection struct {
	dir string
	log *clog.Logger

	mu     sync.RWMutex
	posts  []Post // newest first
	bySlug map[string]int
}

// Open loads every *.md file in dir. Files that fail validation are skipped;
// their errors are joined into the returned error while the collection still
// holds the valid posts.
func Open(dir string, log *clog.Logger) (*Collection, error) {
	c := &Collection{dir: dir, log: log}
	return c, c.Reload()
}

// Dir returns the watched directory.
func (c *Collection) Dir() string { return c.dir }

// Reload re-reads the directory.
func (c *Collection) Reload() error {
	posts, err := loadDir(c.dir)
	idx := make(map[string]int, len(posts))
	for i, p := range posts {
		idx[p.Slug] = i
	}
	c.mu.Lock()
	c.posts = posts
	c.bySlug = idx
	c.mu.Unlock()

	metrics.SetPostsLoaded(len(posts))
	metrics.RecordContentReload(err == nil)
	if err != nil {
		c.log.Warn("content loaded with errors", "dir", c.dir, "posts", len(posts), "err", err)
	} else {
		c.log.Debug("content loaded", "dir", c.dir, "posts", len(posts))
	}
	return err
}

func loadDir(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var (
		posts []Post
		errs  []error
	)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p, err := Parse(e.Name(), b)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date.Time) {
			return posts[i].Date.After(posts[j].Date.Time)
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts, errors.Join(errs...)
}

// List returns the posts newest first. Drafts are left out unless
// includeDrafts is set.
func (c *Collection) List(includeDrafts bool) []Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Post, 0, len(c.posts))
	for _, p := range c.posts {
		if p.Draft && !includeDrafts {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns the post with the given slug.
func (c *Collection) Get(slug string) (Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

// Search fuzzy-matches query against title, description and tags of the
// published posts, best match first.
func (c *Collection) Search(query string) []Post {
	posts := c.List(false)
	query = strings.TrimSpace(query)
	if query == "" {
		return posts
	}
	matches := fuzzy.FindFrom(query, searchSource(posts))
	out := make([]Post, 0, len(matches))
	for _, m := range matches {
		out = append(out, posts[m.Index])
	}
	return out
}

type searchSource []Post

func (s searchSource) String(i int) string {
	p := s[i]
	return p.Title + " " + p.Description + " " + strings.Join(p.Tags, " ")
}

func (s searchSource) Len() int { return len(s) }

// Watch reloads the collection whenever the directory changes, until ctx is
// cancelled. Bursts of events are coalesced.
func (c *Collection) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(c.dir); err != nil {
		return fmt.Errorf("watch %s: %w", c.dir, err)
	}

	const settle = 120 * time.Millisecond
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".md") {
				continue
			}
			pending = time.After(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			_ = c.Reload()
		}
	}
}
