// Package catalog resolves text references to display strings.
package catalog

import (
	_ "embed"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/geoquiz/internal/quiz"
)

//go:embed strings.yaml
var defaultStrings []byte

// Catalog maps text references to display strings.
type Catalog struct {
	texts map[string]string
}

// New creates a catalog from the given texts.
func New(texts map[string]string) *Catalog {
	c := &Catalog{texts: make(map[string]string, len(texts))}
	maps.Copy(c.texts, texts)
	return c
}

// Default returns a catalog holding the built-in English strings.
func Default() *Catalog {
	c, err := Parse(defaultStrings)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded strings: %v", err))
	}
	return c
}

// Parse reads a flat YAML mapping of key to text.
func Parse(data []byte) (*Catalog, error) {
	var texts map[string]string
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("parse strings: %w", err)
	}
	return New(texts), nil
}

// Add registers texts, replacing existing keys.
func (c *Catalog) Add(texts map[string]string) {
	maps.Copy(c.texts, texts)
}

// Lookup returns the text for id and whether it exists.
func (c *Catalog) Lookup(id string) (string, bool) {
	s, ok := c.texts[id]
	return s, ok
}

// Text returns the text for id, or id itself when it is missing.
func (c *Catalog) Text(id string) string {
	if s, ok := c.texts[id]; ok {
		return s
	}
	return id
}

// Notice renders a controller notice for display.
func (c *Catalog) Notice(n quiz.Notice) string {
	text := c.Text(n.Kind.String())
	if n.Kind == quiz.NoticeScore {
		return text + " " + quiz.FormatScore(n.Score)
	}
	return text
}
