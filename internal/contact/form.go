// Package contact implements the contact form: draft editing, validation
// and a single submission attempt through a pluggable Submitter.
package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/starford/folio/internal/apperr"
)

// Form fields.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Status strings shown to the visitor.
const (
	StatusSent   = "Message sent successfully!"
	StatusFailed = "Failed to send message. Please try again later."
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// State is the lifecycle state of a form.
type State int

const (
	Editing State = iota
	Submitting
	Done
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Done:
		return "done"
	default:
		return "editing"
	}
}

// Draft is the transient form content.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate returns a field → message map; it is empty when the draft is valid.
func (d Draft) Validate() map[string]string {
	err := validation.Errors{
		FieldName: validation.Validate(strings.TrimSpace(d.Name),
			validation.Required.Error("Name is required")),
		FieldEmail: validation.Validate(strings.TrimSpace(d.Email),
			validation.Required.Error("Email is required"),
			validation.Match(emailRe).Error("Email is invalid")),
		FieldMessage: validation.Validate(strings.TrimSpace(d.Message),
			validation.Required.Error("Message is required")),
	}.Filter()

	out := map[string]string{}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, fe := range verrs {
			out[field] = fe.Error()
		}
	}
	return out
}

// Message is a validated submission handed to a Submitter.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Submitter delivers a contact message.
type Submitter interface {
	Submit(ctx context.Context, msg Message) error
}

// Form is the contact form state machine.
type Form struct {
	Draft  Draft
	Errors map[string]string
	State  State
	Status string
}

// OnChange updates one draft field.
func (f *Form) OnChange(field, value string) error {
	switch field {
	case FieldName:
		f.Draft.Name = value
	case FieldEmail:
		f.Draft.Email = value
	case FieldMessage:
		f.Draft.Message = value
	default:
		return fmt.Errorf("contact: field %q: %w", field, apperr.ErrInvalidInput)
	}
	f.State = Editing
	return nil
}

// Validate refreshes Errors from the draft and reports whether it is valid.
func (f *Form) Validate() bool {
	f.Errors = f.Draft.Validate()
	return len(f.Errors) == 0
}

// Submit validates the draft and makes one delivery attempt. On success the
// draft is cleared and the form is done; on failure the draft is kept and a
// generic status is set. It returns apperr.ErrInvalidInput or a wrapped
// apperr.ErrDelivery on failure.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	f.Status = ""
	if !f.Validate() {
		f.State = Editing
		return apperr.ErrInvalidInput
	}

	f.State = Submitting
	msg := Message{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(f.Draft.Name),
		Email:      strings.TrimSpace(f.Draft.Email),
		Message:    strings.TrimSpace(f.Draft.Message),
		ReceivedAt: time.Now().UTC(),
	}
	if err := s.Submit(ctx, msg); err != nil {
		f.State = Editing
		f.Status = StatusFailed
		if errors.Is(err, apperr.ErrDelivery) {
			return err
		}
		return fmt.Errorf("%w: %w", apperr.ErrDelivery, err)
	}

	f.Draft = Draft{}
	f.State = Done
	f.Status = StatusSent
	return nil
}
