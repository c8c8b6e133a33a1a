package web

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"

	"github.com/19990921ck-dev/food/pkg/dom"
	"github.com/19990921ck-dev/food/pkg/header"
)

//go:embed pages/*.html
var pagesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// VariantAttr on the header mount point names the header variant of a shell.
const VariantAttr = "data-variant"

// LoadShell parses the embedded page name, e.g. "daily.html", and resolves
// the header variant it asks for. Shells without a variant get the minimal
// header.
func LoadShell(name string) (*dom.Document, header.Variant, error) {
	if name == "" || path.Base(name) != name || path.Ext(name) != ".html" {
		return nil, header.Variant{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	f, err := pagesFS.Open("pages/" + name)
	if err != nil {
		return nil, header.Variant{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, header.Variant{}, errors.Join(ErrShell, err)
	}

	variantName := header.Minimal
	if mount := doc.ByID(header.DefaultMountID); mount != nil {
		if v, ok := mount.Attr(VariantAttr); ok && v != "" {
			variantName = v
		}
	}
	variant, err := header.Builtin(variantName)
	if err != nil {
		return nil, header.Variant{}, errors.Join(ErrShell, err)
	}
	return doc, variant, nil
}

// Pages lists the embedded page names.
func Pages() []string {
	names, _ := fs.Glob(pagesFS, "pages/*.html")
	for i, n := range names {
		names[i] = path.Base(n)
	}
	return names
}

func assetsHandler() http.Handler {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(fmt.Sprintf("web: embedded assets: %v", err))
	}
	return http.FileServerFS(sub)
}
