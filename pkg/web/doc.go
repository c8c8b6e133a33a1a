// Package web serves the Smart Kitchen pages over HTTP.
//
// Page shells are embedded and rendered server side: every request parses
// the shell, runs the page-ready sequence of the food module against the
// session of the request and writes the resulting document. Header clicks
// come back as HTMX (or Datastar) posts to /ui/click/{control}; the handler
// rebuilds the page the browser is on, replays the click and translates the
// recorded effects into response headers.
//
// Routes, relative to the configured base path:
//
//	GET  /                    home page
//	GET  /{page}.html         page shell
//	POST /session             login form
//	POST /ui/click/{control}  header control click
//	POST /api/{action}        backend action proxy
//	GET  /api/recipe          recipe lookup proxy
//	GET  /assets/*            static assets
//	GET  /healthz, /readyz    probes
package web
