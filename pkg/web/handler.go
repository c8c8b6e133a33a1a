package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/starfederation/datastar-go/datastar"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/httpserver"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/links"
	"github.com/19990921ck-dev/food/pkg/page"
	"github.com/19990921ck-dev/food/pkg/session"
)

// ClickPath is the route header controls post their clicks to.
const ClickPath = "ui/click/"

// ClickEndpoint returns the click route under basePath, for
// food.WithClickEndpoint.
func ClickEndpoint(basePath string) string {
	return links.NormalizeBasePath(basePath) + ClickPath
}

// Handler serves the pages of one food module.
type Handler struct {
	module      *food.Module
	slots       SlotFactory
	logger      *slog.Logger
	checks      []httpserver.Check
	corsOrigins []string
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithReadinessChecks are run by /readyz.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// WithCORSOrigins allows the /api routes to be called from origins.
func WithCORSOrigins(origins ...string) Option {
	return func(h *Handler) { h.corsOrigins = append(h.corsOrigins, origins...) }
}

// NewHandler serves m with sessions from slots.
func NewHandler(m *food.Module, slots SlotFactory, opts ...Option) *Handler {
	h := &Handler{
		module: m,
		slots:  slots,
		logger: m.Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns the routes mounted under the base path of the module.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(h.module.Translator(), nil))

	r.Get("/healthz", httpserver.HealthHandler(h.logger))
	r.Get("/readyz", httpserver.HealthHandler(h.logger, h.checks...))

	base := strings.TrimSuffix(h.module.Links().Base(), "/")
	if base == "" {
		h.routes(r)
		return r
	}
	r.Route(base, h.routes)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, h.module.Links().Home(), http.StatusFound)
	})
	return r
}

func (h *Handler) routes(r chi.Router) {
	r.Get("/", h.servePage)
	r.Get("/{page}.html", h.servePage)
	r.Handle("/assets/*", http.StripPrefix(strings.TrimSuffix(h.module.Links().Base(), "/")+"/assets/", assetsHandler()))
	r.Post("/session", h.login)
	r.Post("/"+ClickPath+"{control}", h.click)

	r.Route("/api", func(r chi.Router) {
		if len(h.corsOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   h.corsOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders:   []string{"Accept", "Content-Type", food.HXRequest, food.HXCurrentURL},
				ExposedHeaders:   []string{food.HXTrigger, RequestIDHeader},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		r.Get("/recipe", h.recipe)
		r.Post("/{action}", h.api)
	})
}

func (h *Handler) store(w http.ResponseWriter, r *http.Request) *session.Store {
	return session.NewStore(h.slots(w, r), session.WithLogger(h.logger))
}

// prepare loads the shell behind location and runs the page-ready sequence.
func (h *Handler) prepare(ctx context.Context, w http.ResponseWriter, r *http.Request, location *url.URL, menuOpen bool) (*food.View, *viewSwitcher, error) {
	name := h.module.Links().PageName(location)
	doc, variant, err := LoadShell(name)
	if err != nil {
		return nil, nil, err
	}

	opts := []page.Option{page.WithLogger(h.logger)}
	sw := newViewSwitcher(doc)
	if sw != nil {
		opts = append(opts, page.WithSwitcher(sw))
	}
	p, err := page.New(doc, location.String(), opts...)
	if err != nil {
		return nil, nil, err
	}
	view, err := h.module.Ready(ctx, p, h.store(w, r), variant, food.WithMenuOpen(menuOpen))
	if view == nil {
		return nil, nil, err
	}
	if err != nil {
		// The page is still usable without its page specific setup.
		h.logger.WarnContext(ctx, "page initializer failed", slog.String("page", name), slog.Any("error", err))
	}
	return view, sw, nil
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, _, err := h.prepare(ctx, w, r, requestLocation(r), false)
	if err != nil {
		h.pageError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Page.Doc().Render(w); err != nil {
		h.logger.ErrorContext(ctx, "page render failed", slog.Any("error", err))
	}
}

func (h *Handler) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrUnknownPage) {
		http.NotFound(w, r)
		return
	}
	h.logger.ErrorContext(r.Context(), "page preparation failed", slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// login stores the record posted by the login form and opens the daily
// page of the user.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.Session{
		IDName:      strings.TrimSpace(r.FormValue("idName")),
		DisplayName: strings.TrimSpace(r.FormValue("displayName")),
	}
	if !sess.Valid() {
		msg := h.module.Translator().Tc(ctx, "web.login_required")
		if food.IsHTMX(r) {
			t := food.Triggers{}
			t.Notify(msg)
			_ = t.Write(w)
		}
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if err := h.store(w, r).Save(ctx, sess); err != nil {
		h.logger.ErrorContext(ctx, "login save failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.redirect(w, r, h.module.Links().Daily(sess.IDName))
}

// redirect navigates the browser in the way the requesting client
// understands.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	switch {
	case food.IsHTMX(r):
		food.HTMXRedirect(w, target)
	default:
		if err := food.DataStarRedirect(w, r, target, http.StatusSeeOther); err != nil {
			h.logger.ErrorContext(r.Context(), "redirect failed", slog.Any("error", err))
		}
	}
}

// requestLocation rebuilds the absolute URL of the request.
func requestLocation(r *http.Request) *url.URL {
	u := *r.URL
	u.Scheme = requestScheme(r)
	u.Host = r.Host
	return &u
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// clickLocation returns the page the click came from. Only the path and
// query of the reported location are used; the host is always the host of
// the request.
func (h *Handler) clickLocation(r *http.Request) *url.URL {
	for _, raw := range []string{food.GetHTMXCurrentURL(r), r.Referer()} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Path == "" {
			continue
		}
		return &url.URL{
			Scheme:   requestScheme(r),
			Host:     r.Host,
			Path:     u.Path,
			RawQuery: u.RawQuery,
		}
	}
	home, _ := url.Parse(h.module.Links().Home())
	return requestLocation(r).ResolveReference(home)
}

func menuOpenFrom(r *http.Request) bool {
	if food.IsDataStar(r) {
		var signals struct {
			MenuOpen bool `json:"menuOpen"`
		}
		if err := datastar.ReadSignals(r, &signals); err == nil {
			return signals.MenuOpen
		}
		return false
	}
	return r.FormValue(header.MenuStateField) == "true"
}
