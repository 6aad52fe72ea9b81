// Package server hosts the live preview in a browser.
//
// Each browser tab gets its own editing session, identified by a random
// UUID and backed by a [studio.Controller]. Edits arrive as JSON, the
// preview is served as SVG with an ETag derived from the markup, and the
// export endpoint sends the same bytes the CLI writes to disk.
//
// # Routes
//
//	GET    /                                   editor page
//	GET    /api/presets                        preset catalog
//	POST   /api/sessions                       new session
//	GET    /api/sessions/{id}                  session state
//	PATCH  /api/sessions/{id}                  apply field edits
//	DELETE /api/sessions/{id}                  end session
//	POST   /api/sessions/{id}/presets/{preset} apply a preset
//	GET    /api/sessions/{id}/preview.svg      live markup
//	GET    /api/sessions/{id}/export           download
//
// The server is a local single-user tool; it binds to loopback by default
// and keeps nothing once it exits.
package server
