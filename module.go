package food

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/19990921ck-dev/food/pkg/gateway"
	"github.com/19990921ck-dev/food/pkg/header"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/interaction"
	"github.com/19990921ck-dev/food/pkg/links"
	"github.com/19990921ck-dev/food/pkg/logger"
	"github.com/19990921ck-dev/food/pkg/navigation"
	"github.com/19990921ck-dev/food/pkg/page"
	"github.com/19990921ck-dev/food/pkg/recipe"
	"github.com/19990921ck-dev/food/pkg/session"
)

var ErrNilPage = errors.New("food: page is required")

// PageInit runs page specific setup after the common header features.
type PageInit func(ctx context.Context, v *View) error

// Module holds the collaborators shared by every page.
type Module struct {
	cfg        Config
	links      links.Resolver
	renderer   *header.Renderer
	gateway    *gateway.Gateway
	recipes    *recipe.Client
	tr         *i18n.Translator
	logger     *slog.Logger
	httpClient *http.Client
	clickPath  string
	pageInits  map[string][]PageInit
}

// Option configures a Module.
type Option func(*Module)

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithTranslator(tr *i18n.Translator) Option {
	return func(m *Module) {
		if tr != nil {
			m.tr = tr
		}
	}
}

// WithHTTPClient is used for both backend endpoints.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Module) {
		if c != nil {
			m.httpClient = c
		}
	}
}

// WithClickEndpoint makes the rendered header post clicks to path+id.
func WithClickEndpoint(path string) Option {
	return func(m *Module) { m.clickPath = path }
}

// WithPageInit registers fn for pageName, e.g. "daily.html". An empty
// pageName runs fn on every page.
func WithPageInit(pageName string, fn PageInit) Option {
	return func(m *Module) {
		if fn != nil {
			m.pageInits[pageName] = append(m.pageInits[pageName], fn)
		}
	}
}

// New validates cfg and builds the shared collaborators.
func New(cfg Config, opts ...Option) (*Module, error) {
	m := &Module{
		cfg:       cfg,
		links:     links.NewResolver(cfg.BasePath),
		logger:    slog.Default(),
		pageInits: make(map[string][]PageInit),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tr == nil {
		m.tr = i18n.Default()
	}

	mode, err := gateway.ParseMode(cfg.SuccessMode)
	if err != nil {
		return nil, err
	}
	gw, err := gateway.New(cfg.APIEndpoint,
		gateway.WithMode(mode),
		gateway.WithHTTPClient(m.httpClient),
		gateway.WithTranslator(m.tr),
		gateway.WithLogger(m.logger),
	)
	if err != nil {
		return nil, err
	}
	m.gateway = gw

	if cfg.RecipeEndpoint != "" {
		rc, err := recipe.NewClient(cfg.RecipeEndpoint,
			recipe.WithHTTPClient(m.httpClient),
			recipe.WithLogger(m.logger),
		)
		if err != nil {
			return nil, err
		}
		m.recipes = rc
	}

	m.renderer = header.NewRenderer(m.links,
		header.WithTranslator(m.tr),
		header.WithClickEndpoint(m.clickPath),
		header.WithLogger(m.logger),
	)
	return m, nil
}

func (m *Module) Config() Config               { return m.cfg }
func (m *Module) Links() links.Resolver        { return m.links }
func (m *Module) Gateway() *gateway.Gateway    { return m.gateway }
func (m *Module) Renderer() *header.Renderer   { return m.renderer }
func (m *Module) Translator() *i18n.Translator { return m.tr }
func (m *Module) Logger() *slog.Logger         { return m.logger }

// Recipes returns the lookup client; ok is false when no endpoint is
// configured.
func (m *Module) Recipes() (c *recipe.Client, ok bool) { return m.recipes, m.recipes != nil }

type readyOptions struct {
	mountID  string
	menuOpen bool
}

// ReadyOption adjusts one Ready run.
type ReadyOption func(*readyOptions)

// WithMountID mounts the header somewhere other than header.DefaultMountID.
func WithMountID(id string) ReadyOption {
	return func(o *readyOptions) {
		if id != "" {
			o.mountID = id
		}
	}
}

// WithMenuOpen renders the header with the menu expanded.
func WithMenuOpen(open bool) ReadyOption {
	return func(o *readyOptions) { o.menuOpen = open }
}

// Ready runs the page-ready sequence on p. A page without a header mount
// point is still prepared; its controls are simply absent.
func (m *Module) Ready(ctx context.Context, p *page.Page, store *session.Store, variant header.Variant, opts ...ReadyOption) (*View, error) {
	if p == nil {
		return nil, ErrNilPage
	}
	o := readyOptions{mountID: header.DefaultMountID}
	for _, opt := range opts {
		opt(&o)
	}
	pageName := m.links.PageName(p.Location())
	log := m.logger.With(logger.Page(pageName))

	mounted := m.renderer.Mount(ctx, p.Doc(), o.mountID, header.Props{Variant: variant, MenuOpen: o.menuOpen})
	if !mounted {
		log.DebugContext(ctx, "header mount point absent", slog.String("mount", o.mountID))
	}

	nav := navigation.NewController(p.Doc(), store,
		navigation.WithVariant(variant),
		navigation.WithTranslator(m.tr),
		navigation.WithLogger(log),
	)
	state := nav.Refresh(ctx)

	interaction.NewBinder(m.links, store, nav,
		interaction.WithTranslator(m.tr),
		interaction.WithLogger(log),
	).Bind(p)

	v := &View{
		Page:      p,
		Nav:       nav,
		Store:     store,
		Variant:   variant,
		Indicator: gateway.NewCountedIndicator(gateway.NewDOMIndicator(p.Doc())),
		module:    m,
	}

	inits := append(append([]PageInit(nil), m.pageInits[""]...), m.pageInits[pageName]...)
	for _, fn := range inits {
		if err := fn(ctx, v); err != nil {
			return v, fmt.Errorf("food: %s initializer: %w", pageName, err)
		}
	}
	log.DebugContext(ctx, "page ready", slog.String("state", string(state)), slog.Bool("header", mounted))
	return v, nil
}

// View is a prepared page.
type View struct {
	Page      *page.Page
	Nav       *navigation.Controller
	Store     *session.Store
	Variant   header.Variant
	Indicator *gateway.CountedIndicator

	module *Module
}

// Call runs a backend action with the page's indicator and notifications.
// A nil result means the failure was already reported on the page.
func (v *View) Call(ctx context.Context, action string, payload map[string]any, opts ...gateway.CallOption) *gateway.Result {
	base := []gateway.CallOption{gateway.WithIndicator(v.Indicator), gateway.WithNotifier(v.Page)}
	return v.module.gateway.Call(ctx, action, payload, append(base, opts...)...)
}

// Session returns the current login, if any.
func (v *View) Session(ctx context.Context) (session.Session, bool) {
	return v.Store.Lookup(ctx)
}
