// Package page models the browser side of a rendered page: the document,
// its location, click handlers bound to controls, the notifications shown to
// the user and the optional page-local view switcher.
//
// Handlers run to completion one at a time per click; the page records the
// effects (navigation, notifications) so the HTTP layer can translate them
// into a response.
package page
