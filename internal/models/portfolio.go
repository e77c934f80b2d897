// Package models defines the domain types for the portfolio site.
package models

// Profile is the personal header shown on the home section.
type Profile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Photo    string `json:"photo"`
	Summary  string `json:"summary"`
	Links    []Link `json:"links"`
}

// Link is an outbound social or document link.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// SkillGroup is a labelled list of skills on the about section.
type SkillGroup struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// Degree is one entry on the education section.
type Degree struct {
	Title       string   `json:"title"`
	Institution string   `json:"institution"`
	Period      string   `json:"period"`
	Highlights  []string `json:"highlights"`
}

// Job is one entry on the experience section.
type Job struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Period     string   `json:"period"`
	Link       *Link    `json:"link,omitempty"`
	Highlights []string `json:"highlights"`
}

// Certificate is a course or certification record.
type Certificate struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	IssuedBy      string `json:"issued_by"`
	IssueDate     string `json:"issue_date"`
	CredentialID  string `json:"credential_id,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
	Skills        string `json:"skills"`
	PDFURL        string `json:"pdf_url"`
	Category      string `json:"category,omitempty"`
	IsPinned      bool   `json:"is_pinned"`
}

// Project is a portfolio project shown with an image carousel.
type Project struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	ProjectURL       string   `json:"project_url"`
	GitHubURL        string   `json:"github_url"`
	Date             string   `json:"date,omitempty"`
	Skills           []string `json:"skills"`
	Images           []string `json:"images"`
}

// PostFormat is the source format of a blog post asset.
type PostFormat string

const (
	FormatMarkdown PostFormat = "markdown"
	FormatHTML     PostFormat = "html"
)

// Post is a blog catalog entry. The body is fetched lazily from Source.
type Post struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Date     string     `json:"date"`
	Image    string     `json:"image"`
	Excerpt  string     `json:"excerpt"`
	Source   string     `json:"source"`
	Format   PostFormat `json:"format"`
}
