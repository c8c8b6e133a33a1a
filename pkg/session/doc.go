// Package session reads and clears the persisted login record that the
// Smart Kitchen pages share.
//
// The record is a single JSON object {"idName": ..., "displayName": ...}
// stored in one named slot. The login flow writes it elsewhere; this package
// loads it on every page build and removes it on logout. A record is either
// complete or treated as absent: partial or malformed data never counts as a
// logged-in user.
//
// # Architecture
//
// Store handles encoding and the all-or-nothing invariant. Where the bytes
// live is decided by a Slot implementation:
//
//   - MemorySlot keeps the record in process memory (tests, single-user tools)
//   - FileSlot keeps it in one JSON file, replaced atomically
//   - CookieSlot keeps it in the visitor's "loggedInUser" cookie, signed by
//     a cookie.Manager
//   - RedisSlot keeps it under one Redis key
//
// # Usage
//
//	store := session.NewStore(session.NewCookieSlot(w, r, cookies, session.DefaultCookieName))
//	if sess, ok := store.Lookup(ctx); ok {
//		fmt.Println("hello", sess.DisplayName)
//	}
//	_ = store.Clear(ctx)
//
// Lookup never fails: backend errors and corrupt records are logged and
// reported as "no session". Use Load when the caller needs to tell a
// corrupt record apart from a missing one.
package session
