// Package gateway is the single path from the front-end to the remote
// backend.
//
// Do posts one action and classifies the reply. Call wraps Do with the
// page-facing contract: the loading indicator is shown before the request
// and always hidden before Call returns, and a failure is reported to the
// user through one notification while Call returns nil.
//
//	gw, err := gateway.New(cfg.APIEndpoint)
//	if err != nil {
//	    return err
//	}
//	res := gw.Call(ctx, "getHistory", map[string]any{"idName": id},
//	    gateway.WithIndicator(ind),
//	    gateway.WithNotifier(p),
//	)
//	if res == nil {
//	    return // already reported
//	}
//
// # Success classification
//
// Classify is the only place that decides success. A reply succeeds when
// its "status" field is "success" or, in ModeBoth, when its "success"
// field is true.
//
// # Indicator
//
// Concurrent calls on one page share an indicator. Wrapping it with
// NewCountedIndicator keeps it visible until the last call settles.
package gateway
