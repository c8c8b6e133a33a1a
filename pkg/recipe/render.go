package recipe

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/19990921ck-dev/food/pkg/i18n"
)

//go:embed card.html
var cardHTML string

var templates = template.Must(template.New("recipe").Parse(cardHTML))

// Card renders a recipe with the element ids the recipe page expects.
func Card(r DailyRecipe) templ.Component {
	return templ.FromGoHTML(templates.Lookup("card"), r)
}

// ErrorMessage renders a lookup failure, e.g. "查詢失敗：user not found".
func ErrorMessage(ctx context.Context, tr *i18n.Translator, err error) string {
	if tr == nil {
		tr = i18n.Default()
	}
	if errors.Is(err, ErrEmptyIDName) {
		return tr.Tc(ctx, "recipe.empty_idname")
	}
	detail := err.Error()
	var se *StatusError
	var be *BackendError
	switch {
	case errors.As(err, &se):
		detail = tr.Tc(ctx, "recipe.http_error", "status", strconv.Itoa(se.StatusCode))
	case errors.As(err, &be):
		detail = be.Message
	}
	return tr.Tc(ctx, "recipe.failed", "message", detail)
}

// ErrorBox renders ErrorMessage into the page's error element.
func ErrorBox(tr *i18n.Translator, err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.FromGoHTML(templates.Lookup("error"), ErrorMessage(ctx, tr, err)).Render(ctx, w)
	})
}
