// Package content loads the blog collection: markdown files with YAML front
// matter, validated against a fixed schema.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a post whose front matter does not satisfy the schema.
var ErrInvalid = errors.New("invalid post")

// Date accepts YAML timestamps as well as date-only and RFC 3339 strings.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", n.Line)
	}
	if n.ShortTag() == "!!timestamp" {
		return n.Decode(&d.Time)
	}
	s := strings.TrimSpace(n.Value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("line %d: cannot parse %q as a date", n.Line, n.Value)
}

// MarshalYAML writes the date back as a YAML timestamp.
func (d Date) MarshalYAML() (any, error) { return d.Time, nil }

// Meta is the front matter of a post.
type Meta struct {
	Title       string   `yaml:"title" json:"title" jsonschema:"minLength=1"`
	Description string   `yaml:"description" json:"description" jsonschema:"minLength=1"`
	Date        Date     `yaml:"date" json:"date"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Draft       bool     `yaml:"draft,omitempty" json:"draft,omitempty"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
}

// Post is one entry of the collection.
type Post struct {
	Meta
	Slug string `json:"slug"`
	Body string `json:"-"`
}

// Validate checks the required fields.
func (m Meta) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(m.Description) == "" {
		missing = append(missing, "description")
	}
	if m.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}
	return nil
}

// yamlFence is the only front matter format posts may use. Decoding goes
// through yaml.v3 so Date sees the node tags.
var yamlFence = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Parse reads a post from its file name and raw content.
func Parse(name string, raw []byte) (Post, error) {
	slug := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	var meta Meta
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &meta, yamlFence)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return Post{}, fmt.Errorf("%s: %w: no front matter", name, ErrInvalid)
	}
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w: %v", name, ErrInvalid, err)
	}
	if err := meta.Validate(); err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}
	meta.Tags = normalizeTags(meta.Tags)
	return Post{Meta: meta, Slug: slug, Body: strings.TrimLeft(string(body), "\r\n")}, nil
}

func normalizeTags(in []string) []string {
	seen := map[string]bool{}
	out := in[:0]
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
