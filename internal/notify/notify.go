// Package notify carries user-visible notices (toasts) from form flows to the
// HTTP response.
package notify

import (
	"sync"

	"github.com/familyalbum/album-backend/pkg/i18n"
)

// Variant selects how a client renders a notice
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a fire-and-forget {title, description, variant} triple
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Sink consumes notices
type Sink interface {
	Notify(n Notice)
}

// Discard drops every notice
var Discard Sink = discard{}

type discard struct{}

func (discard) Notify(Notice) {}

// Recorder collects notices for one request, translating message keys
type Recorder struct {
	mu      sync.Mutex
	bundle  *i18n.Bundle
	locale  i18n.Locale
	notices []Notice
}

// NewRecorder creates a Recorder. A nil bundle records keys untranslated.
func NewRecorder(bundle *i18n.Bundle, locale i18n.Locale) *Recorder {
	return &Recorder{bundle: bundle, locale: locale}
}

// Notify records n, translating Title and Description when they are message keys
func (r *Recorder) Notify(n Notice) {
	if r.bundle != nil {
		n.Title = r.bundle.T(r.locale, n.Title)
		n.Description = r.bundle.T(r.locale, n.Description)
	}
	if n.Variant == "" {
		n.Variant = VariantDefault
	}

	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// Notices returns a copy of what has been recorded
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Success builds a default-variant notice from message keys
func Success(descriptionKey string) Notice {
	return Notice{Title: "notice.success", Description: descriptionKey, Variant: VariantDefault}
}

// Failure builds a destructive notice from message keys
func Failure(titleKey, descriptionKey string) Notice {
	return Notice{Title: titleKey, Description: descriptionKey, Variant: VariantDestructive}
}
