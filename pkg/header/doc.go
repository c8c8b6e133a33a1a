// Package header renders the shared Smart Kitchen navigation header and
// mounts it into a page's header placeholder.
//
// The header is the DOM contract other pages rely on: after Mount the
// elements "header-username", "menu-toggle", "navigation-menu" and the
// navigation controls of the chosen Variant can be looked up by id.
package header
