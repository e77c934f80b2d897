package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/contact"
	"github.com/starford/folio/internal/nav"
)

const maxContactBody = 64 << 10

// ContactPage handles GET /contact.
func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.showSection(w, r, nav.Contact)
}

// ContactSubmit handles POST /contact from the HTML form.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := &contact.Form{}
	for _, field := range []string{contact.FieldName, contact.FieldEmail, contact.FieldMessage} {
		_ = form.OnChange(field, r.PostFormValue(field))
	}

	status := http.StatusOK
	err := form.Submit(r.Context(), h.deps.Submitter)
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
	case err != nil:
		h.logger.Warn("contact delivery failed", slog.String("error", err.Error()))
		status = http.StatusBadGateway
	}
	if isHTMX(r) {
		status = http.StatusOK
	}

	sh, _ := shellFor(r, nav.Contact)
	p := h.newPage(r, sh)
	p.Form = form
	h.render(w, r, status, p)
}

// APIContact handles POST /api/contact with a JSON body.
func (h *Handler) APIContact(w http.ResponseWriter, r *http.Request) {
	var d contact.Draft
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&d); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid json"))
		return
	}

	form := &contact.Form{Draft: d}
	err := form.Submit(r.Context(), h.deps.Submitter)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, statusResponse{Status: "ok"})
	case errors.Is(err, apperr.ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, errResponse{Error: "validation failed", Fields: form.Errors})
	default:
		h.logger.Warn("contact delivery failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorBody(contact.StatusFailed))
	}
}
