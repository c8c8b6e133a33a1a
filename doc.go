// Package food wires the session-aware navigation header and the backend
// gateway of the Smart Kitchen front-end.
//
// A Module is built once from Config. For every rendered page, Ready runs
// the page-ready sequence:
//
//  1. mount the header into the page's placeholder
//  2. apply the session state to the header (navigation.Controller)
//  3. bind the header controls (interaction.Binder)
//  4. run the page initializers registered with WithPageInit
//
// The returned View carries everything a page handler needs afterwards,
// including View.Call for backend actions with the page's loading
// indicator and notifications.
//
//	m, err := food.New(cfg, food.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	view, err := m.Ready(ctx, p, store, variant)
//	if err != nil {
//	    return err
//	}
//	if res := view.Call(ctx, "getHistory", payload); res != nil {
//	    // render res.Body()
//	}
//
// HTMX and Datastar helpers in this package translate page effects into
// responses for either client library.
package food
