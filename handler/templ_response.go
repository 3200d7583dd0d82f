package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page of a DataStar client.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component replaces.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	component templ.Component
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ renders component as HTML, or patches it into the page for DataStar requests:
//
//	return handler.Templ(
//		handler.ValidationMessages(set, "email"),
//		handler.WithTarget("#email-messages"),
//		handler.WithPatchMode(handler.PatchInner),
//	)
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}
