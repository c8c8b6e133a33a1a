package food

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector a Datastar patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how a Datastar patch merges into the page.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// RenderTempl writes component as an HTML fragment, or as an element
// patch over SSE for Datastar requests.
func RenderTempl(w http.ResponseWriter, r *http.Request, component templ.Component, opts ...TemplOption) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(component, opts...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}
