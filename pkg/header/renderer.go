package header

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"io"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/19990921ck-dev/food/pkg/dom"
	"github.com/19990921ck-dev/food/pkg/i18n"
	"github.com/19990921ck-dev/food/pkg/links"
)

//go:embed header.html
var headerHTML string

var headerTemplate = template.Must(template.New("header").Parse(headerHTML))

// Props is the input of one header rendering.
type Props struct {
	Variant Variant
	// DisplayName is shown in the username slot; empty renders the
	// "not logged in" placeholder.
	DisplayName string
	MenuOpen    bool
}

// Renderer builds header markup.
type Renderer struct {
	links         links.Resolver
	tr            *i18n.Translator
	clickEndpoint string
	logger        *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

func WithTranslator(tr *i18n.Translator) Option {
	return func(r *Renderer) {
		if tr != nil {
			r.tr = tr
		}
	}
}

// WithClickEndpoint makes every control post its clicks to endpoint+id via
// HTMX.
func WithClickEndpoint(endpoint string) Option {
	return func(r *Renderer) { r.clickEndpoint = endpoint }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRenderer(resolver links.Resolver, opts ...Option) *Renderer {
	r := &Renderer{
		links:  resolver,
		tr:     i18n.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Component returns the header as a templ component. Labels are translated
// for the locale stored in the render context.
func (r *Renderer) Component(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.FromGoHTML(headerTemplate, r.data(ctx, props)).Render(ctx, w)
	})
}

// Mount replaces the content of the element targetID with the header.
// It reports false, without error, when the mount point is absent.
func (r *Renderer) Mount(ctx context.Context, doc *dom.Document, targetID string, props Props) bool {
	target := doc.ByID(targetID)
	if target == nil {
		return false
	}
	var buf bytes.Buffer
	if err := r.Component(props).Render(ctx, &buf); err != nil {
		r.logger.ErrorContext(ctx, "header render failed", "error", err)
		return false
	}
	if err := target.SetInnerHTML(buf.String()); err != nil {
		r.logger.ErrorContext(ctx, "header mount failed", "mount", targetID, "error", err)
		return false
	}
	return true
}

type headerIDs struct {
	Header, Username, Toggle, Menu string
}

type toggleData struct {
	Post, Target, Vals string
}

type entryData struct {
	Separator bool
	ID        string
	Href      string
	Class     string
	Label     string
	Post      string
}

type headerData struct {
	IDs         headerIDs
	Home        string
	Brand       string
	Name        string
	ToggleLabel string
	Open        bool
	OpenClass   string
	Toggle      *toggleData
	Entries     []entryData
}

func (r *Renderer) data(ctx context.Context, props Props) headerData {
	name := props.DisplayName
	if name == "" {
		name = r.tr.Tc(ctx, "header.anonymous")
	}
	d := headerData{
		IDs:         headerIDs{Header: HeaderID, Username: UsernameID, Toggle: MenuToggleID, Menu: MenuID},
		Home:        r.links.Home(),
		Brand:       r.tr.Tc(ctx, "header.brand"),
		Name:        name,
		ToggleLabel: r.tr.Tc(ctx, "header.menu_toggle"),
		Open:        props.MenuOpen,
		OpenClass:   OpenClass,
		Entries:     make([]entryData, 0, len(props.Variant.Entries)),
	}
	if r.clickEndpoint != "" {
		d.Toggle = &toggleData{Post: r.clickEndpoint + MenuToggleID, Target: HeaderID, Vals: MenuStateVals(props.MenuOpen)}
	}
	for _, e := range props.Variant.Entries {
		if e.Separator {
			d.Entries = append(d.Entries, entryData{Separator: true})
			continue
		}
		ed := entryData{ID: e.ID, Href: "#", Class: e.Class, Label: r.tr.Tc(ctx, e.Label)}
		switch {
		case e.IsLink():
			ed.Href = r.links.Page(e.Page)
		case r.clickEndpoint != "":
			ed.Post = r.clickEndpoint + e.ID
		}
		d.Entries = append(d.Entries, ed)
	}
	return d
}

// MenuStateVals is the hx-vals payload the toggle sends for a menu state.
func MenuStateVals(open bool) string {
	if open {
		return `{"` + MenuStateField + `":"true"}`
	}
	return `{"` + MenuStateField + `":"false"}`
}
