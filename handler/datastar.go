package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by DataStar clients expecting an event stream.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch modes for WithPatchMode.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r comes from a DataStar client.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE opens a Server-Sent Event stream on w. It writes the stream headers immediately.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
