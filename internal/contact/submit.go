package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/starford/folio/internal/apperr"
)

// LogSubmitter only logs the message. It never fails.
type LogSubmitter struct {
	Logger *slog.Logger
}

// Submit implements Submitter.
func (s LogSubmitter) Submit(_ context.Context, msg Message) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("contact: message received",
		slog.String("id", msg.ID),
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.Int("length", len(msg.Message)))
	return nil
}

// RelaySubmitter posts the message as JSON to an HTTP endpoint once.
type RelaySubmitter struct {
	Endpoint string
	Client   *http.Client
}

// NewRelaySubmitter returns a relay with the given request timeout.
func NewRelaySubmitter(endpoint string, timeout time.Duration) *RelaySubmitter {
	return &RelaySubmitter{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

type relayBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit implements Submitter. Any non-2xx status is a delivery failure.
func (s *RelaySubmitter) Submit(ctx context.Context, msg Message) error {
	body, err := json.Marshal(relayBody{Name: msg.Name, Email: msg.Email, Message: msg.Message})
	if err != nil {
		return fmt.Errorf("contact: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", msg.ID)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrDelivery, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: relay status %d", apperr.ErrDelivery, resp.StatusCode)
	}
	return nil
}

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// MailSubmitter forwards the message by SMTP.
type MailSubmitter struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string

	send SendMailFunc
}

// NewMailSubmitter returns a submitter using net/smtp.
func NewMailSubmitter(host string, port int, username, password, to string) *MailSubmitter {
	return &MailSubmitter{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		To:       to,
		send:     smtp.SendMail,
	}
}

// Submit implements Submitter.
func (s *MailSubmitter) Submit(_ context.Context, msg Message) error {
	if s.Username == "" || s.Password == "" {
		return fmt.Errorf("%w: smtp credentials not configured", apperr.ErrDelivery)
	}
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	if err := s.send(addr, auth, s.Username, []string{s.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrDelivery, err)
	}
	return nil
}

func (s *MailSubmitter) compose(msg Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + s.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + headerSafe(msg.Name) + "\r\n")
	b.WriteString("From: " + s.Username + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(msg.Email) + "\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission (%s)\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n",
		msg.ID, headerSafe(msg.Name), headerSafe(msg.Email), msg.Message)
	return []byte(b.String())
}

// headerSafe strips CR and LF so visitor input cannot add mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
