package content

import (
	"testing"

	"github.com/starford/folio/internal/models"
)

func TestDisplayed_PinnedOnlyPreservesOrder(t *testing.T) {
	all := []models.Certificate{
		{ID: "a", IsPinned: true},
		{ID: "b"},
		{ID: "c", IsPinned: true},
		{ID: "d"},
	}
	got := Displayed(all, false)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("pinned = %v, want [a c]", ids(got))
	}
}

func TestDisplayed_ShowAll(t *testing.T) {
	got := Displayed(Certificates, true)
	if len(got) != len(Certificates) {
		t.Errorf("len = %d, want %d", len(got), len(Certificates))
	}
}

func TestDisplayed_CompiledCatalog(t *testing.T) {
	for _, c := range Displayed(Certificates, false) {
		if !c.IsPinned {
			t.Errorf("unpinned certificate %q in collapsed list", c.ID)
		}
	}
	if !HasHidden(Certificates) {
		t.Error("catalog should have hidden certificates")
	}
}

func TestHasHidden_AllPinned(t *testing.T) {
	if HasHidden([]models.Certificate{{IsPinned: true}}) {
		t.Error("all pinned should report no hidden")
	}
}

func TestProjectBySlug(t *testing.T) {
	p, ok := ProjectBySlug(Projects, "sales-dashboard")
	if !ok || p.Title != "Sales Dashboard" {
		t.Errorf("lookup = %+v, %v", p, ok)
	}
	if _, ok := ProjectBySlug(Projects, "nope"); ok {
		t.Error("unknown slug should not be found")
	}
}

func TestCertificateLookups(t *testing.T) {
	c, ok := CertificateByID(Certificates, "meta-da-sql")
	if !ok || c.PDFURL != "/pdf/DA2.pdf" {
		t.Fatalf("by id = %+v, %v", c, ok)
	}
	if got, ok := CertificateByPDF(Certificates, "/pdf/DA2.pdf"); !ok || got.ID != "meta-da-sql" {
		t.Errorf("by pdf = %+v, %v", got, ok)
	}
	if _, ok := CertificateByPDF(Certificates, "https://evil.example/x.pdf"); ok {
		t.Error("unknown pdf should not be found")
	}
	if _, ok := CertificateByPDF(Certificates, ""); ok {
		t.Error("empty pdf should not be found")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Certificates {
		if seen[c.ID] {
			t.Errorf("duplicate certificate id %q", c.ID)
		}
		seen[c.ID] = true
	}
	for _, p := range Posts {
		if seen[p.ID] {
			t.Errorf("post id %q collides", p.ID)
		}
		seen[p.ID] = true
	}
}

func ids(cs []models.Certificate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
