// Package dom provides a small, server-side document model on top of
// golang.org/x/net/html.
//
// A Document wraps a parsed HTML tree and exposes the handful of operations
// the header and gateway code needs from a browser DOM: lookup by element id,
// text and attribute mutation, class toggling, display control and markup
// injection into a mount point.
//
// Lookups never fail loudly. A missing element is reported as a nil *Element
// and every method on a nil *Element is a no-op, so callers can chain
// operations against controls that a given page shell does not carry.
//
// Basic usage:
//
//	doc, err := dom.ParseString(`<div id="header-placeholder"></div>`)
//	if err != nil {
//		return err
//	}
//	if el := doc.ByID("header-placeholder"); el != nil {
//		_ = el.SetInnerHTML(`<span id="header-username">guest</span>`)
//	}
//	doc.ByID("header-username").SetText("Alice")
package dom
