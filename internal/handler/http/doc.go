// Package http implements the HTTP transport layer of the application.
//
// Requests pass through chi middleware (panic recovery, request timeout,
// trace ids, access logging) and are then dispatched by the ordered
// [router.Router]. Handlers return a result or an error; a single endpoint
// adapter turns either into the JSON response envelope and records request
// metrics.
package http
