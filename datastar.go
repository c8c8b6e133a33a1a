package food

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept value of a Datastar request.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Signals pushed to Datastar pages.
const (
	SignalNotification = "notification"
	SignalView         = "view"
)

// IsDataStar reports whether the request comes from Datastar.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// DataStarRedirect navigates a Datastar page over SSE and falls back to a
// plain HTTP redirect otherwise.
func DataStarRedirect(w http.ResponseWriter, r *http.Request, url string, code int) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(url)
	}
	http.Redirect(w, r, url, code)
	return nil
}

// PatchSignals sends signal values on an open stream.
func PatchSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) error {
	if len(signals) == 0 {
		return nil
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}
