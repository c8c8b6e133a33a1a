package food

import (
	"encoding/json"
	"net/http"
)

// HTMX header names.
const (
	HXRequest    = "HX-Request"
	HXTarget     = "HX-Target"
	HXTrigger    = "HX-Trigger"
	HXCurrentURL = "HX-Current-URL"

	HXRedirect = "HX-Redirect"
	HXReswap   = "HX-Reswap"
)

// Client events raised through HX-Trigger.
const (
	// EventNotify carries {"message": "..."}; the page shows it in a
	// blocking dialog.
	EventNotify = "notify"
	// EventSwitchView carries the id of the view to activate.
	EventSwitchView = "page:switch"
)

func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// GetHTMXCurrentURL returns the browser location sent by HTMX.
func GetHTMXCurrentURL(r *http.Request) string {
	return r.Header.Get(HXCurrentURL)
}

// Triggers collects HX-Trigger events for one response.
type Triggers map[string]any

// Notify sets the notification event. The event's message is the last one;
// all of them are listed under "messages" in order.
func (t Triggers) Notify(messages ...string) {
	if len(messages) == 0 {
		return
	}
	t[EventNotify] = map[string]any{"message": messages[len(messages)-1], "messages": messages}
}

func (t Triggers) SwitchView(view string) {
	t[EventSwitchView] = view
}

// Write sets the HX-Trigger header. It writes nothing for an empty set.
func (t Triggers) Write(w http.ResponseWriter) error {
	if len(t) == 0 {
		return nil
	}
	data, err := json.Marshal(map[string]any(t))
	if err != nil {
		return err
	}
	w.Header().Set(HXTrigger, string(data))
	return nil
}

// HTMXRedirect makes HTMX do a full page navigation to url.
func HTMXRedirect(w http.ResponseWriter, url string) {
	w.Header().Set(HXRedirect, url)
	w.WriteHeader(http.StatusOK)
}
