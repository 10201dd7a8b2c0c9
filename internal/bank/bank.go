// Package bank provides the built-in question bank and loads custom banks
// from YAML or JSON files.
package bank

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/geoquiz/internal/quiz"
)

// Bank is an ordered set of questions plus the prompt texts it brings along.
type Bank struct {
	Title     string
	Questions []quiz.Question

	// Prompts maps PromptID to text. Empty for the default bank, whose
	// prompts live in the built-in catalog.
	Prompts map[string]string
}

// file is the on-disk shape of a bank.
type file struct {
	Title     string  `json:"title" yaml:"title"`
	Questions []entry `json:"questions" yaml:"questions"`
}

type entry struct {
	ID     string `json:"id" yaml:"id"`
	Prompt string `json:"prompt" yaml:"prompt"`
	Answer bool   `json:"answer" yaml:"answer"`
}

// Default returns the six-question geography bank.
func Default() *Bank {
	return &Bank{
		Title: "Geography",
		Questions: []quiz.Question{
			{PromptID: "question_australia", Answer: true},
			{PromptID: "question_oceans", Answer: true},
			{PromptID: "question_mideast", Answer: false},
			{PromptID: "question_africa", Answer: false},
			{PromptID: "question_americas", Answer: true},
			{PromptID: "question_asia", Answer: true},
		},
	}
}

// Load reads and validates a bank file. The format is picked from the
// extension: .json is JSON, anything else is YAML.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	b, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Format is the encoding of a bank document.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// Parse decodes and validates a bank document.
func Parse(data []byte, format Format) (*Bank, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	// The document passed the schema, so re-decoding through JSON is safe.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode bank: %w", err)
	}
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	b := &Bank{
		Title:     f.Title,
		Questions: make([]quiz.Question, 0, len(f.Questions)),
		Prompts:   make(map[string]string, len(f.Questions)),
	}
	for i, e := range f.Questions {
		if _, dup := b.Prompts[e.ID]; dup {
			return nil, &ValidationError{Path: fmt.Sprintf("/questions/%d/id", i), Err: fmt.Errorf("duplicate id %q", e.ID)}
		}
		b.Prompts[e.ID] = e.Prompt
		b.Questions = append(b.Questions, quiz.Question{PromptID: e.ID, Answer: e.Answer})
	}
	return b, nil
}

// decode turns the raw document into the generic JSON value the schema
// validator expects.
func decode(data []byte, format Format) (any, error) {
	if format == FormatJSON {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
		}
		return doc, nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	// Round-trip through JSON so numbers and maps have JSON types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("convert YAML: %w", err)}
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("convert YAML: %w", err)}
	}
	return out, nil
}

// Fingerprint identifies a bank by its question ids and answers. A saved
// position is only meaningful for the bank it was taken on.
func (b *Bank) Fingerprint() string {
	h := sha256.New()
	for _, q := range b.Questions {
		fmt.Fprintf(h, "%s=%t\n", q.PromptID, q.Answer)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
