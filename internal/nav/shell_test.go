package nav

import (
	"errors"
	"testing"

	"github.com/starford/folio/internal/apperr"
)

func TestNew_DefaultsToHome(t *testing.T) {
	s := New()
	if s.Active != Home {
		t.Errorf("active = %q, want %q", s.Active, Home)
	}
}

func TestSelect_EverySectionActivatesOnlyItself(t *testing.T) {
	for _, sec := range Sections() {
		s := New()
		if err := s.Select(sec.Key); err != nil {
			t.Fatalf("Select(%q): %v", sec.Key, err)
		}
		active := 0
		for _, other := range Sections() {
			if s.IsActive(other.Key) {
				active++
			}
		}
		if active != 1 || !s.IsActive(sec.Key) {
			t.Errorf("Select(%q): %d active sections", sec.Key, active)
		}
		if s.Current().Key != sec.Key {
			t.Errorf("Current = %q", s.Current().Key)
		}
	}
}

func TestSelect_UnknownKeyKeepsState(t *testing.T) {
	s := New()
	_ = s.Select(Blog)
	err := s.Select("admin")
	if !errors.Is(err, apperr.ErrUnknownSection) {
		t.Fatalf("err = %v, want ErrUnknownSection", err)
	}
	if s.Active != Blog {
		t.Errorf("active = %q, want unchanged %q", s.Active, Blog)
	}
}

func TestTooltip(t *testing.T) {
	s := New()
	about, _ := Lookup(About)
	s.Hover("About")
	if got := s.Tooltip(about); got != "About" {
		t.Errorf("tooltip = %q, want About", got)
	}
	s.ToggleLabels()
	if got := s.Tooltip(about); got != "" {
		t.Errorf("tooltip with labels visible = %q", got)
	}
	s.ToggleLabels()
	s.Unhover()
	if got := s.Tooltip(about); got != "" {
		t.Errorf("tooltip after unhover = %q", got)
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	a := Sections()
	a[0].Label = "changed"
	if Sections()[0].Label != "Home" {
		t.Error("Sections exposed internal slice")
	}
}

func TestProjectsLabel(t *testing.T) {
	sec, ok := Lookup(Projects)
	if !ok || sec.Label != "Certificates" {
		t.Errorf("projects section = %+v", sec)
	}
}
