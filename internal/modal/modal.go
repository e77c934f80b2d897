// Package modal implements the overlay state used by the certificates
// section: a PDF viewer and a project carousel.
package modal

import "github.com/starford/folio/internal/models"

// State is the open/closed state of a modal.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Modal is a single overlay that shows either a PDF or a project.
type Modal struct {
	state    State
	pdfURL   string
	project  *models.Project
	carousel Carousel
}

// OpenPDF shows the PDF at url.
func (m *Modal) OpenPDF(url string) {
	m.state = Open
	m.pdfURL = url
	m.project = nil
	m.carousel = Carousel{}
}

// OpenProject shows p with its carousel at the first image.
func (m *Modal) OpenProject(p models.Project) {
	m.OpenProjectAt(p, 0)
}

// OpenProjectAt shows p with its carousel at index, clamped into range.
func (m *Modal) OpenProjectAt(p models.Project, index int) {
	m.state = Open
	m.pdfURL = ""
	m.project = &p
	m.carousel = NewCarousel(len(p.Images), index)
}

// Close hides the modal and clears its target.
func (m *Modal) Close() {
	m.state = Closed
	m.pdfURL = ""
	m.project = nil
	m.carousel = Carousel{}
}

// State returns the current state.
func (m *Modal) State() State { return m.state }

// IsOpen reports whether the modal is open.
func (m *Modal) IsOpen() bool { return m.state == Open }

// PDFURL returns the PDF being shown, or "".
func (m *Modal) PDFURL() string { return m.pdfURL }

// Project returns the project being shown, or nil.
func (m *Modal) Project() *models.Project { return m.project }

// Carousel returns the project image carousel.
func (m *Modal) Carousel() *Carousel { return &m.carousel }

// ScrollLocked reports whether page scrolling is locked. Only the project
// overlay locks scrolling.
func (m *Modal) ScrollLocked() bool { return m.state == Open && m.project != nil }

// CurrentImage returns the image under the carousel index, or "".
func (m *Modal) CurrentImage() string {
	if m.project == nil || len(m.project.Images) == 0 {
		return ""
	}
	return m.project.Images[m.carousel.Index()]
}
