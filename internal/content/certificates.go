package content

import "github.com/starford/folio/internal/models"

// Displayed returns the certificates visible for the given toggle state:
// everything when showAll is set, otherwise only pinned ones in original order.
func Displayed(all []models.Certificate, showAll bool) []models.Certificate {
	if showAll {
		return all
	}
	out := make([]models.Certificate, 0, len(all))
	for _, c := range all {
		if c.IsPinned {
			out = append(out, c)
		}
	}
	return out
}

// HasHidden reports whether some certificates are only visible with showAll.
func HasHidden(all []models.Certificate) bool {
	for _, c := range all {
		if !c.IsPinned {
			return true
		}
	}
	return false
}

// ProjectBySlug looks up a project in the given list.
func ProjectBySlug(projects []models.Project, slug string) (models.Project, bool) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Project{}, false
}

// CertificateByID looks up a certificate in the given list.
func CertificateByID(all []models.Certificate, id string) (models.Certificate, bool) {
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return models.Certificate{}, false
}

// CertificateByPDF finds the certificate whose PDF lives at url.
func CertificateByPDF(all []models.Certificate, url string) (models.Certificate, bool) {
	for _, c := range all {
		if url != "" && c.PDFURL == url {
			return c, true
		}
	}
	return models.Certificate{}, false
}
