package router

import "errors"

var (
	// ErrRouteNotFound describes a request no registered route matched.
	// The router never returns it to callers: unmatched requests go to the
	// not-found handler, which may use it to build its response.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidPattern is raised at registration for malformed patterns.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrUnsupportedMethod is raised at registration for methods other than
	// GET, POST, PUT and DELETE.
	ErrUnsupportedMethod = errors.New("unsupported route method")
)
