package web

import "github.com/19990921ck-dev/food/pkg/dom"

// ViewClass marks the in-page views of a shell.
const ViewClass = "page-view"

// viewSwitcher shows one .page-view of the document and hides the others.
// It remembers the last switch so the click response can replay it in the
// browser.
type viewSwitcher struct {
	doc      *dom.Document
	switched string
}

// newViewSwitcher returns nil when the document has no views.
func newViewSwitcher(doc *dom.Document) *viewSwitcher {
	if len(doc.AllByClass(ViewClass)) == 0 {
		return nil
	}
	return &viewSwitcher{doc: doc}
}

func (s *viewSwitcher) SwitchTo(viewID string) bool {
	views := s.doc.AllByClass(ViewClass)
	found := false
	for _, v := range views {
		if v.ID() == viewID {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, v := range views {
		if v.ID() == viewID {
			v.Show()
		} else {
			v.Hide()
		}
	}
	s.switched = viewID
	return true
}

// Switched returns the view activated during this request, if any.
func (s *viewSwitcher) Switched() string {
	if s == nil {
		return ""
	}
	return s.switched
}
