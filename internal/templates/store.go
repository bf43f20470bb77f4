// Package templates holds the pre-configured generation templates: named
// triples of A1.art identifiers that let callers skip manual parameter
// selection.
package templates

import (
	"encoding/json"
	"errors"
	"os"
	"sort"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Resolve for template ids absent from the table.
var ErrNotFound = errors.New("template not found")

type Template struct {
	TemplateID int    `json:"template_id"`
	Name       string `json:"name"`
	AppID      string `json:"app_id"`
	VersionID  string `json:"version_id"`
	CnetFormID string `json:"cnet_form_id"`
	// Optional preview image path shown by the front-end.
	TemplateImage string `json:"template_image,omitempty"`
}

type templatesFile struct {
	Templates []Template `json:"templates"`
}

// Store is the read-only template table. It is loaded once at startup and
// never mutated, so concurrent reads need no synchronization.
type Store struct {
	byID   map[int]Template
	logger zerolog.Logger
}

// Load reads the template configuration file. A missing or malformed file
// degrades to an empty table so the process still starts; every later
// resolution then fails with ErrNotFound.
func Load(path string, logger zerolog.Logger) *Store {
	s := &Store{
		byID:   make(map[int]Template),
		logger: logger.With().Str("component", "templates").Logger(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error().Str("path", path).Err(err).Msg("failed to read template config, starting with empty table")
		return s
	}

	var file templatesFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.logger.Error().Str("path", path).Err(err).Msg("failed to parse template config, starting with empty table")
		return s
	}

	for _, t := range file.Templates {
		s.byID[t.TemplateID] = t
	}
	s.logger.Info().Int("count", len(s.byID)).Msg("templates loaded")
	return s
}

// Resolve looks up a template by id.
func (s *Store) Resolve(templateID int) (Template, error) {
	t, ok := s.byID[templateID]
	if !ok {
		s.logger.Warn().Int("template_id", templateID).Msg("template id not found")
		return Template{}, ErrNotFound
	}
	return t, nil
}

// List returns all templates sorted by template id.
func (s *Store) List() []Template {
	list := make([]Template, 0, len(s.byID))
	for _, t := range s.byID {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].TemplateID < list[j].TemplateID
	})
	return list
}

// Len reports the number of loaded templates.
func (s *Store) Len() int {
	return len(s.byID)
}
