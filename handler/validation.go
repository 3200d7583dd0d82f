package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/validkit/pkg/validation"
)

// CSS classes by worst level at a path.
const (
	ClassSuccess = "validation-success"
	ClassWarning = "validation-warning"
	ClassError   = "validation-error"
)

// ValidationClass returns the CSS class for the worst message at path, or "" when the path has
// no messages.
func ValidationClass(set *validation.Set, path string) string {
	if set == nil || !set.Has(path) {
		return ""
	}
	return levelClass(set.PathStatus(path))
}

func levelClass(l validation.Level) string {
	switch l {
	case validation.LevelError:
		return ClassError
	case validation.LevelWarning:
		return ClassWarning
	}
	return ClassSuccess
}

// ValidationMessages renders the messages at path as a list, one item per message with the
// class of its level. Nothing is rendered when the path has no messages.
//
//	<input name="email" class={ handler.ValidationClass(set, "email") }/>
//	@handler.ValidationMessages(set, "email")
func ValidationMessages(set *validation.Set, path string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if set == nil || !set.Has(path) {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<ul class="validation-messages">`)
		for _, m := range set.Messages(path) {
			b.WriteString(`<li class="`)
			b.WriteString(levelClass(m.Level))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(m.Text))
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ValidationSignals sends the message texts of set to a DataStar client as the signal
// {name: {path: [texts]}}. Other clients get JSON with the set under meta.validation.<name>,
// with status 422 when the set holds an error.
func ValidationSignals(name string, set *validation.Set) Response {
	return validationSignals{name: name, set: set}
}

type validationSignals struct {
	name string
	set  *validation.Set
}

func (v validationSignals) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		status := http.StatusOK
		if v.set != nil && !v.set.IsValid() {
			status = http.StatusUnprocessableEntity
		}
		return JSON(nil, WithJSONStatus(status), WithValidation(v.name, v.set)).Render(w, r)
	}

	return SSE(func(stream StreamContext) error {
		return stream.SendSignals(map[string]any{v.name: messageTexts(v.set)})
	}).Render(w, r)
}

func messageTexts(set *validation.Set) map[string][]string {
	out := map[string][]string{}
	if set == nil {
		return out
	}
	for _, path := range set.Paths() {
		for _, m := range set.Messages(path) {
			out[path] = append(out[path], m.Text)
		}
	}
	return out
}
