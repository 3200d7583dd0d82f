package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open event stream.
type StreamContext interface {
	Context
	SendComponent(component templ.Component, opts ...TemplOption) error
	// SendSignals merges signals into the client state.
	SendSignals(signals map[string]any) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

// SSEHandler runs for the lifetime of an event stream.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: base.SSE()})
}

// SSE streams to a DataStar client. Other requests fail with a 400 HTTPError.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
