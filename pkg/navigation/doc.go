// Package navigation keeps the header in step with the login session.
//
// A Controller is a two-state machine (Authenticated, Anonymous) driven by
// session events. Entering a state applies its effect to the page document:
// the username slot text and the visibility of every navigation entry
// except logout, which stays visible in both states.
//
//	ctrl := navigation.NewController(doc, store,
//	    navigation.WithVariant(variant),
//	)
//	state := ctrl.Refresh(ctx)
//
// Refresh never returns an error. A corrupt session record ends in
// Anonymous with the "data error" placeholder in the username slot.
package navigation
