// Package router maps inbound HTTP requests to handlers using ordered
// path patterns.
//
// Patterns use `/segment/:name/segment` syntax. A segment is either a literal
// compared by exact string equality or a named parameter written `:name`,
// which captures one or more characters from [A-Za-z0-9_-] (never a slash).
// There are no wildcard or catch-all segments.
//
// # Matching order
//
// Routes are tried in registration order and the first route whose method
// matches and whose pattern structurally matches wins. A pattern only matches
// a path with the same number of segments. There is no specificity ranking:
// when a literal and a parameter could both match at the same position, the
// route registered first wins. Register overlapping patterns most specific
// first, for example
//
//	r.Get("/api/venues/featured", featured) // must come before
//	r.Get("/api/venues/:id", show)
//
// # Concurrency
//
// Register all routes before serving. After that the route table is only read
// and a Router may serve any number of requests concurrently.
package router
