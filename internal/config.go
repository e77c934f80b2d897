package internal

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Blog sources.
const (
	BlogSourceFS   = "fs"
	BlogSourceHTTP = "http"
)

// Contact delivery modes.
const (
	ContactModeLog   = "log"
	ContactModeRelay = "relay"
	ContactModeSMTP  = "smtp"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Site    SiteConfig        `yaml:"site"`
	Blog    BlogConfig        `yaml:"blog"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Contact ContactConfig     `yaml:"contact"`
	CORS    CORSConfig        `yaml:"cors"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Site.Validate(); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := c.Blog.Validate(); err != nil {
		return fmt.Errorf("blog: %w", err)
	}
	if err := c.SQLite.Validate(); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return c.Contact.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SiteConfig points at the asset root holding blogPosts/, pdf/, images/
// and static/.
type SiteConfig struct {
	Root  string `yaml:"root"`
	Watch bool   `yaml:"watch"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
}

// postDirPattern accepts one plain directory name.
var postDirPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// BlogConfig selects where post bodies are fetched from.
type BlogConfig struct {
	// Dir is the post asset directory under the source root.
	Dir     string        `yaml:"dir"`
	Source  string        `yaml:"source"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Validate validates the blog configuration.
func (c *BlogConfig) Validate() error {
	if c.Source == "" {
		c.Source = BlogSourceFS
	}
	if c.Dir == "" {
		c.Dir = "blogPosts"
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required, validation.Match(postDirPattern)),
		validation.Field(&c.Source, validation.Required, validation.In(BlogSourceFS, BlogSourceHTTP)),
		validation.Field(&c.BaseURL,
			validation.When(c.Source == BlogSourceHTTP, validation.Required, is.URL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ContactConfig selects how contact messages are delivered.
//
// Mode is one of:
//   - "log" (default): messages are only logged.
//   - "relay": one JSON POST to Endpoint.
//   - "smtp": mail through SMTP.
type ContactConfig struct {
	Mode     string        `yaml:"mode"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	SMTP     SMTPConfig    `yaml:"smtp"`
}

// Validate validates the contact configuration.
func (c *ContactConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = ContactModeLog
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(ContactModeLog, ContactModeRelay, ContactModeSMTP)),
		validation.Field(&c.Endpoint, validation.When(c.Mode == ContactModeRelay, validation.Required, is.URL)),
	); err != nil {
		return fmt.Errorf("contact: %w", err)
	}
	if c.Mode == ContactModeSMTP {
		if err := c.SMTP.Validate(); err != nil {
			return fmt.Errorf("contact: smtp: %w", err)
		}
	}
	return nil
}

// SMTPConfig holds mail relay settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	To       string `yaml:"to"`
}

// Validate validates the SMTP configuration.
func (c *SMTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.Password, validation.Required),
		validation.Field(&c.To, validation.Required, is.EmailFormat),
	)
}

// CORSConfig lists origins allowed to call /api.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Site: SiteConfig{
			Root:  "./site",
			Watch: true,
		},
		Blog: BlogConfig{
			Dir:     "blogPosts",
			Source:  BlogSourceFS,
			Timeout: 10 * time.Second,
		},
		SQLite: SQLiteConfig{
			Path: "./folio.db",
		},
		Contact: ContactConfig{
			Mode:    ContactModeLog,
			Timeout: 10 * time.Second,
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: 587,
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}
