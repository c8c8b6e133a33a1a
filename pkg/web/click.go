package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/dom"
	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/logger"
)

// SignalMenuOpen is the Datastar signal holding the menu state.
const SignalMenuOpen = "menuOpen"

// click replays a header control click on the page the browser is showing
// and sends back what the handler did to it.
func (h *Handler) click(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	control := chi.URLParam(r, "control")
	log := h.logger.With(logger.Control(control))

	view, sw, err := h.prepare(ctx, w, r, h.clickLocation(r), menuOpenFrom(r))
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	handled, err := view.Page.Click(ctx, control)
	if !handled {
		log.DebugContext(ctx, "click on unbound control")
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.ErrorContext(ctx, "click handler failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	fx := clickEffects{control: control, view: sw.Switched()}
	fx.target, fx.navigated = view.Page.Navigation()
	fx.notes = view.Page.Notifications()
	if control == header.MenuToggleID {
		fx.header = view.Page.Doc().ByID(header.HeaderID)
		if toggle := view.Page.Doc().ByID(header.MenuToggleID); toggle != nil {
			fx.menuOpen = toggle.HasClass(header.OpenClass)
			if _, ok := toggle.Attr("hx-vals"); ok {
				toggle.SetAttr("hx-vals", header.MenuStateVals(fx.menuOpen))
			}
		}
	}

	switch {
	case food.IsDataStar(r):
		err = h.clickDataStar(w, r, fx)
	case food.IsHTMX(r):
		err = h.clickHTMX(w, r, fx)
	default:
		h.clickPlain(w, r, view.Page.Location().String(), fx)
	}
	if err != nil {
		log.ErrorContext(ctx, "click response failed", slog.Any("error", err))
	}
}

type clickEffects struct {
	control   string
	target    string
	navigated bool
	notes     []string
	view      string
	header    *dom.Element
	menuOpen  bool
}

func (fx clickEffects) headerFragment() templ.Component {
	return templ.Raw(fx.header.OuterHTML())
}

func (h *Handler) clickHTMX(w http.ResponseWriter, r *http.Request, fx clickEffects) error {
	t := food.Triggers{}
	t.Notify(fx.notes...)
	if fx.view != "" {
		t.SwitchView(fx.view)
	}
	if err := t.Write(w); err != nil {
		return err
	}
	if fx.navigated {
		food.HTMXRedirect(w, fx.target)
		return nil
	}
	if fx.header != nil {
		return food.RenderTempl(w, r, fx.headerFragment())
	}
	w.WriteHeader(http.StatusOK)
	return nil
}

func (h *Handler) clickDataStar(w http.ResponseWriter, r *http.Request, fx clickEffects) error {
	sse := datastar.NewSSE(w, r)
	if fx.navigated {
		return sse.Redirect(fx.target)
	}
	if fx.header != nil {
		if err := sse.PatchElementTempl(fx.headerFragment()); err != nil {
			return err
		}
	}
	signals := map[string]any{}
	if n := len(fx.notes); n > 0 {
		signals[food.SignalNotification] = fx.notes[n-1]
	}
	if fx.view != "" {
		signals[food.SignalView] = fx.view
	}
	if fx.header != nil {
		signals[SignalMenuOpen] = fx.menuOpen
	}
	return food.PatchSignals(sse, signals)
}

// clickPlain answers a form post without client scripting: the browser
// follows the navigation or reloads the page it came from.
func (h *Handler) clickPlain(w http.ResponseWriter, r *http.Request, location string, fx clickEffects) {
	target := location
	if fx.navigated {
		target = fx.target
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
