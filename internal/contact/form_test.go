package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/starford/folio/internal/apperr"
)

type stubSubmitter struct {
	err  error
	msgs []Message
}

func (s *stubSubmitter) Submit(_ context.Context, msg Message) error {
	s.msgs = append(s.msgs, msg)
	return s.err
}

func TestValidate_Valid(t *testing.T) {
	d := Draft{Name: "Ann", Email: "ann@example.com", Message: "hi"}
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("errors = %v, want none", errs)
	}
}

func TestValidate_MissingNameOnly(t *testing.T) {
	errs := Draft{Name: "", Email: "a@b.com", Message: "hi"}.Validate()
	if len(errs) != 1 || errs[FieldName] != "Name is required" {
		t.Errorf("errors = %v, want name only", errs)
	}
}

func TestValidate_Email(t *testing.T) {
	cases := map[string]string{
		"":            "Email is required",
		"   ":         "Email is required",
		"not-an-email": "Email is invalid",
		"a@b":         "Email is invalid",
		"a@b.c":       "",
	}
	for email, want := range cases {
		errs := Draft{Name: "n", Email: email, Message: "m"}.Validate()
		if errs[FieldEmail] != want {
			t.Errorf("email %q: got %q, want %q", email, errs[FieldEmail], want)
		}
	}
}

func TestValidate_WhitespaceMessage(t *testing.T) {
	errs := Draft{Name: "n", Email: "a@b.co", Message: " \n\t"}.Validate()
	if errs[FieldMessage] != "Message is required" {
		t.Errorf("errors = %v", errs)
	}
}

func TestOnChange_UnknownField(t *testing.T) {
	var f Form
	if err := f.OnChange("phone", "123"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSubmit_InvalidStaysEditing(t *testing.T) {
	var f Form
	_ = f.OnChange(FieldEmail, "bad")
	s := &stubSubmitter{}
	err := f.Submit(context.Background(), s)
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v", err)
	}
	if f.State != Editing || len(s.msgs) != 0 {
		t.Errorf("state = %v, submitted %d", f.State, len(s.msgs))
	}
	if len(f.Errors) != 3 {
		t.Errorf("errors = %v, want 3 fields", f.Errors)
	}
}

func TestSubmit_SuccessClearsDraft(t *testing.T) {
	var f Form
	_ = f.OnChange(FieldName, " Ann ")
	_ = f.OnChange(FieldEmail, "ann@example.com")
	_ = f.OnChange(FieldMessage, "hello")
	s := &stubSubmitter{}
	if err := f.Submit(context.Background(), s); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.State != Done || f.Status != StatusSent {
		t.Errorf("state = %v status = %q", f.State, f.Status)
	}
	if f.Draft != (Draft{}) {
		t.Errorf("draft not cleared: %+v", f.Draft)
	}
	if len(s.msgs) != 1 || s.msgs[0].Name != "Ann" || s.msgs[0].ID == "" {
		t.Errorf("msgs = %+v", s.msgs)
	}
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	f := Form{Draft: Draft{Name: "Ann", Email: "ann@example.com", Message: "hello"}}
	s := &stubSubmitter{err: errors.New("boom")}
	err := f.Submit(context.Background(), s)
	if !errors.Is(err, apperr.ErrDelivery) {
		t.Fatalf("err = %v, want ErrDelivery", err)
	}
	if f.State != Editing || f.Status != StatusFailed {
		t.Errorf("state = %v status = %q", f.State, f.Status)
	}
	if f.Draft.Name != "Ann" {
		t.Error("draft should be kept after failure")
	}
}
