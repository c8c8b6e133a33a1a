package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
// It is not safe for concurrent mutation; one request owns one Document.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// ByID returns the first element carrying the given id, or nil.
func (d *Document) ByID(id string) *Element {
	if d == nil || id == "" {
		return nil
	}
	n := findNode(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	return wrap(n)
}

// ByClass returns the first element whose class list contains class, or nil.
func (d *Document) ByClass(class string) *Element {
	if d == nil || class == "" {
		return nil
	}
	n := findNode(d.root, func(n *html.Node) bool {
		return hasClass(n, class)
	})
	return wrap(n)
}

// AllByClass returns every element whose class list contains class, in
// document order.
func (d *Document) AllByClass(class string) []*Element {
	if d == nil || class == "" {
		return nil
	}
	var out []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			out = append(out, wrap(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// findNode walks the tree depth first and returns the first element node
// that satisfies match.
func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}
