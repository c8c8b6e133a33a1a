package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/gateway"
	"github.com/19990921ck-dev/food/pkg/recipe"
)

const maxPayloadSize = 1 << 20

var errPayloadNotObject = errors.New("web: payload is not a JSON object")

// api forwards one backend action. The payload is the JSON object of the
// request body, or its form fields.
func (h *Handler) api(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tr := h.module.Translator()

	payload, err := readPayload(r)
	if err != nil {
		h.logger.DebugContext(ctx, "bad api payload", slog.Any("error", err))
		h.apiFailure(w, r, http.StatusBadRequest, tr.Tc(ctx, "web.bad_payload"))
		return
	}

	res, err := h.module.Gateway().Do(ctx, chi.URLParam(r, "action"), payload)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, gateway.ErrInvalidAction) || errors.Is(err, gateway.ErrInvalidPayload) {
			status = http.StatusBadRequest
		}
		h.apiFailure(w, r, status, gateway.UserMessage(ctx, tr, err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Raw()); err != nil {
		h.logger.DebugContext(ctx, "api response write failed", slog.Any("error", err))
	}
}

func (h *Handler) apiFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	if food.IsHTMX(r) {
		t := food.Triggers{}
		t.Notify(message)
		_ = t.Write(w)
	}
	writeJSON(w, status, map[string]string{"message": message})
}

func readPayload(r *http.Request) (map[string]any, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" || ct == "text/plain" {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
		if err != nil {
			return nil, err
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, nil
		}
		var payload map[string]any
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, errors.Join(errPayloadNotObject, err)
		}
		return payload, nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxPayloadSize)
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	if len(r.PostForm) == 0 {
		return nil, nil
	}
	payload := make(map[string]any, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) == 1 {
			payload[key] = values[0]
		} else {
			payload[key] = values
		}
	}
	return payload, nil
}

// recipe proxies the recipe lookup. HTMX and Datastar clients get the
// rendered card, others the JSON record.
func (h *Handler) recipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tr := h.module.Translator()

	client, ok := h.module.Recipes()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": tr.Tc(ctx, "web.recipe_unavailable")})
		return
	}
	rec, err := client.Lookup(ctx, r.URL.Query().Get("idname"))

	if food.IsHTMX(r) || food.IsDataStar(r) {
		opts := []food.TemplOption{
			food.WithTarget("#recipe-container"),
			food.WithPatchMode(datastar.ElementPatchModeInner),
		}
		component := recipe.Card(rec)
		if err != nil {
			component = recipe.ErrorBox(tr, err)
		}
		if rerr := food.RenderTempl(w, r, component, opts...); rerr != nil {
			h.logger.ErrorContext(ctx, "recipe render failed", slog.Any("error", rerr))
		}
		return
	}

	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, recipe.ErrEmptyIDName) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": recipe.ErrorMessage(ctx, tr, err)})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
