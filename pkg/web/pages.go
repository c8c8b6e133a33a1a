package web

import (
	"context"
	"net/url"

	food "github.com/19990921ck-dev/food"
	"github.com/19990921ck-dev/food/pkg/links"
)

// RecipeContainerID receives the rendered recipe card.
const RecipeContainerID = "recipe-container"

// ModuleOptions are the food options the web surface relies on: header
// clicks posted to the click route and the page specific initializers.
func ModuleOptions(basePath string) []food.Option {
	return []food.Option{
		food.WithClickEndpoint(ClickEndpoint(basePath)),
		food.WithPageInit(links.DailyPage, DailyInit),
	}
}

// DailyInit makes the daily page load the recipe of the user named in the
// location, or of the logged-in user.
func DailyInit(ctx context.Context, v *food.View) error {
	container := v.Page.Doc().ByID(RecipeContainerID)
	if container == nil {
		return nil
	}
	idName := v.Page.Location().Query().Get("idname")
	if idName == "" {
		if sess, ok := v.Session(ctx); ok {
			idName = sess.IDName
		}
	}
	if idName == "" {
		return nil
	}
	container.SetAttr("hx-get", "api/recipe?idname="+url.QueryEscape(idName))
	container.SetAttr("hx-trigger", "load")
	return nil
}
