// Package nav models the sidebar shell: the closed set of sections and
// which one is active.
package nav

import (
	"fmt"

	"github.com/starford/folio/internal/apperr"
)

// Section is one top-level navigable view.
type Section struct {
	Key   string
	Label string
	Icon  string
}

// Section keys.
const (
	Home       = "home"
	About      = "about"
	Education  = "education"
	Experience = "experience"
	Projects   = "projects"
	Blog       = "blog"
	Contact    = "contact"
)

var sections = []Section{
	{Key: Home, Label: "Home", Icon: "home"},
	{Key: About, Label: "About", Icon: "user"},
	{Key: Education, Label: "Education", Icon: "file-text"},
	{Key: Experience, Label: "Experience", Icon: "briefcase"},
	{Key: Projects, Label: "Certificates", Icon: "code"},
	{Key: Blog, Label: "Blog", Icon: "notebook"},
	{Key: Contact, Label: "Contact", Icon: "send"},
}

// Sections returns the sections in sidebar order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Lookup finds a section by key.
func Lookup(key string) (Section, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// Shell holds the navigation state. The zero value is not usable; use New.
type Shell struct {
	Active        string
	Hovered       string
	LabelsVisible bool
}

// New returns a shell with the home section active.
func New() *Shell {
	return &Shell{Active: Home}
}

// Select makes key the active section.
func (s *Shell) Select(key string) error {
	if _, ok := Lookup(key); !ok {
		return fmt.Errorf("nav: select %q: %w", key, apperr.ErrUnknownSection)
	}
	s.Active = key
	return nil
}

// Hover sets the tooltip label; an empty label clears it.
func (s *Shell) Hover(label string) { s.Hovered = label }

// Unhover clears the tooltip label.
func (s *Shell) Unhover() { s.Hovered = "" }

// ToggleLabels flips sidebar label visibility.
func (s *Shell) ToggleLabels() { s.LabelsVisible = !s.LabelsVisible }

// Tooltip returns the label to show next to the sidebar for section sec.
// Tooltips only appear while labels are collapsed.
func (s *Shell) Tooltip(sec Section) string {
	if s.LabelsVisible || s.Hovered != sec.Label {
		return ""
	}
	return sec.Label
}

// IsActive reports whether key is the active section.
func (s *Shell) IsActive(key string) bool { return s.Active == key }

// Current returns the active section.
func (s *Shell) Current() Section {
	sec, _ := Lookup(s.Active)
	return sec
}
