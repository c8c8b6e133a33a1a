package dom

import (
	"bytes"
	"errors"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to one element node of a Document.
// All methods tolerate a nil receiver.
type Element struct {
	n *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{n: n}
}

// ID returns the element id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.n.Data
}

func (e *Element) Attr(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	return attr(e.n, key)
}

func (e *Element) SetAttr(key, val string) {
	if e == nil {
		return
	}
	setAttr(e.n, key, val)
}

func (e *Element) RemoveAttr(key string) {
	if e == nil {
		return
	}
	removeAttr(e.n, key)
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return sb.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	if e == nil {
		return
	}
	e.clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetInnerHTML parses markup in the context of the element and replaces its
// children with the result.
func (e *Element) SetInnerHTML(markup string) error {
	if e == nil {
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return errors.Join(ErrParse, err)
	}
	e.clear()
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	return nil
}

// OuterHTML renders the element itself, including its children.
func (e *Element) OuterHTML() string {
	if e == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, e.n); err != nil {
		return ""
	}
	return buf.String()
}

// FirstByTag returns the first descendant with the given tag name.
func (e *Element) FirstByTag(tag string) *Element {
	if e == nil {
		return nil
	}
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if n := findNode(c, func(n *html.Node) bool { return n.Data == tag }); n != nil {
			return wrap(n)
		}
	}
	return nil
}

func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	return hasClass(e.n, class)
}

func (e *Element) AddClass(class string) {
	if e == nil || class == "" || e.HasClass(class) {
		return
	}
	e.setClasses(append(e.classes(), class))
}

func (e *Element) RemoveClass(class string) {
	if e == nil || !e.HasClass(class) {
		return
	}
	e.setClasses(slices.DeleteFunc(e.classes(), func(c string) bool { return c == class }))
}

// ToggleClass flips class and reports whether it is now present.
func (e *Element) ToggleClass(class string) bool {
	if e == nil {
		return false
	}
	if e.HasClass(class) {
		e.RemoveClass(class)
		return false
	}
	e.AddClass(class)
	return true
}

// Display returns the inline display value, if any.
func (e *Element) Display() string {
	if e == nil {
		return ""
	}
	for _, d := range e.styles() {
		if d[0] == "display" {
			return d[1]
		}
	}
	return ""
}

// SetDisplay sets the inline display value. An empty value removes it.
func (e *Element) SetDisplay(value string) {
	if e == nil {
		return
	}
	decls := slices.DeleteFunc(e.styles(), func(d [2]string) bool { return d[0] == "display" })
	if value != "" {
		decls = append(decls, [2]string{"display", value})
	}
	if len(decls) == 0 {
		removeAttr(e.n, "style")
		return
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d[0]+": "+d[1])
	}
	setAttr(e.n, "style", strings.Join(parts, "; "))
}

// Show clears hidden markers and inline display:none.
func (e *Element) Show() {
	if e == nil {
		return
	}
	e.RemoveAttr("hidden")
	if e.Display() == "none" {
		e.SetDisplay("")
	}
}

// Hide marks the element as not displayed.
func (e *Element) Hide() {
	e.SetDisplay("none")
}

// Visible reports whether the element itself is displayed.
// Ancestors are not consulted.
func (e *Element) Visible() bool {
	if e == nil {
		return false
	}
	if _, hidden := e.Attr("hidden"); hidden {
		return false
	}
	return e.Display() != "none"
}

func (e *Element) clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

func (e *Element) classes() []string {
	v, _ := attr(e.n, "class")
	return strings.Fields(v)
}

func (e *Element) setClasses(classes []string) {
	if len(classes) == 0 {
		removeAttr(e.n, "class")
		return
	}
	setAttr(e.n, "class", strings.Join(classes, " "))
}

func (e *Element) styles() [][2]string {
	v, _ := attr(e.n, "style")
	var decls [][2]string
	for part := range strings.SplitSeq(v, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		decls = append(decls, [2]string{name, strings.TrimSpace(value)})
	}
	return decls
}
