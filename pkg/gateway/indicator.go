package gateway

import (
	"sync"

	"github.com/19990921ck-dev/food/pkg/dom"
)

// LoadingOverlayID is the element of the page shell that blocks the UI
// while a call is in flight. Its first <p> holds the message.
const LoadingOverlayID = "loading-overlay"

// Indicator is the loading state shown while a call is in flight.
type Indicator interface {
	Show(message string)
	Hide()
}

type nopIndicator struct{}

func (nopIndicator) Show(string) {}
func (nopIndicator) Hide()       {}

// DOMIndicator drives the loading overlay of a document. A document
// without the overlay makes it a no-op.
type DOMIndicator struct {
	doc *dom.Document
	id  string
}

func NewDOMIndicator(doc *dom.Document) *DOMIndicator {
	return &DOMIndicator{doc: doc, id: LoadingOverlayID}
}

func (d *DOMIndicator) Show(message string) {
	overlay := d.doc.ByID(d.id)
	if overlay == nil {
		return
	}
	if p := overlay.FirstByTag("p"); p != nil && message != "" {
		p.SetText(message)
	}
	overlay.SetDisplay("flex")
}

func (d *DOMIndicator) Hide() {
	d.doc.ByID(d.id).SetDisplay("none")
}

// Visible reports whether the overlay is displayed.
func (d *DOMIndicator) Visible() bool {
	overlay := d.doc.ByID(d.id)
	return overlay != nil && overlay.Display() == "flex"
}

// CountedIndicator shares one Indicator between concurrent calls. It is
// hidden only when every Show has been matched by a Hide.
type CountedIndicator struct {
	mu       sync.Mutex
	inner    Indicator
	inflight int
}

func NewCountedIndicator(inner Indicator) *CountedIndicator {
	if inner == nil {
		inner = nopIndicator{}
	}
	return &CountedIndicator{inner: inner}
}

func (c *CountedIndicator) Show(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
	c.inner.Show(message)
}

func (c *CountedIndicator) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight == 0 {
		return
	}
	c.inflight--
	if c.inflight == 0 {
		c.inner.Hide()
	}
}

// InFlight returns the number of calls holding the indicator.
func (c *CountedIndicator) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}
