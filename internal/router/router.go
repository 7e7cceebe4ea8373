// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/utils"
)

// Handler serves a matched request. params holds the captured path
// parameters in pattern declaration order.
type Handler func(w http.ResponseWriter, r *http.Request, params Params)

// Route is one registered method+pattern binding. Routes are immutable once
// registered.
type Route struct {
	Method  string
	Pattern string

	segments []segment
	handler  Handler
}

// match reports whether parts structurally matches the route and returns the
// captured parameters.
func (rt Route) match(parts []string) (Params, bool) {
	if len(parts) != len(rt.segments) {
		return nil, false
	}

	var params Params
	for i, seg := range rt.segments {
		if !seg.isParam() {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}
		if !isParamValue(parts[i]) {
			return nil, false
		}
		params = append(params, Param{Key: seg.param, Value: parts[i]})
	}

	return params, true
}

var supportedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodDelete: {},
}

// Router dispatches requests to the first matching route in registration
// order. See the package documentation for the matching rules.
type Router struct {
	routes   []Route
	basePath string
	notFound http.Handler
}

// Option configures a [Router].
type Option func(*Router)

// WithBasePath sets a prefix stripped from request paths before matching,
// for deployments served under a sub-path. A trailing slash is ignored. The
// prefix is stripped only when it ends at a segment boundary: with base
// "/api", "/api/x" becomes "/x" while "/apifoo/x" is left as is.
func WithBasePath(basePath string) Option {
	return func(r *Router) {
		r.basePath = strings.TrimRight(basePath, "/")
	}
}

// WithNotFound sets the handler invoked when no route matches.
func WithNotFound(h http.Handler) Option {
	return func(r *Router) {
		r.notFound = h
	}
}

// New constructs an empty Router.
func New(opts ...Option) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers handler for method and pattern.
//
// It panics when the method is not GET, POST, PUT or DELETE, or when the
// pattern is malformed. Registration happens at startup, so both are
// programming errors.
func (r *Router) Handle(method, pattern string, handler Handler) {
	if _, ok := supportedMethods[method]; !ok {
		panic(fmt.Errorf("%w: %q", ErrUnsupportedMethod, method))
	}
	if handler == nil {
		panic(fmt.Errorf("%w: nil handler for %s %s", ErrInvalidPattern, method, pattern))
	}

	segments, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}

	r.routes = append(r.routes, Route{
		Method:   method,
		Pattern:  pattern,
		segments: segments,
		handler:  handler,
	})
}

// Get registers a GET route.
func (r *Router) Get(pattern string, handler Handler) {
	r.Handle(http.MethodGet, pattern, handler)
}

// Post registers a POST route.
func (r *Router) Post(pattern string, handler Handler) {
	r.Handle(http.MethodPost, pattern, handler)
}

// Put registers a PUT route.
func (r *Router) Put(pattern string, handler Handler) {
	r.Handle(http.MethodPut, pattern, handler)
}

// Delete registers a DELETE route.
func (r *Router) Delete(pattern string, handler Handler) {
	r.Handle(http.MethodDelete, pattern, handler)
}

// NotFound sets the handler invoked when no route matches.
func (r *Router) NotFound(h http.Handler) {
	r.notFound = h
}

// Routes returns a copy of the registered routes in registration order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Match finds the route for method and rawPath.
//
// rawPath may carry a query string and the configured base path; both are
// stripped and the result is given exactly one leading slash before routes
// are scanned in registration order.
func (r *Router) Match(method, rawPath string) (Route, Params, bool) {
	parts := splitPath(r.normalize(rawPath))

	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		if params, ok := route.match(parts); ok {
			return route, params, true
		}
	}

	return Route{}, nil, false
}

// ServeHTTP implements [http.Handler]. It invokes the matched route handler,
// or the not-found handler when nothing matches. Panics and errors raised by
// handlers are not intercepted.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	route, params, ok := r.Match(req.Method, req.URL.RequestURI())
	if !ok {
		logger.FromRequest(req).Debug().
			Str("method", req.Method).
			Str("uri", req.URL.RequestURI()).
			Msg(ErrRouteNotFound.Error())

		if r.notFound != nil {
			r.notFound.ServeHTTP(w, req)
			return
		}
		writeNotFound(w)
		return
	}

	route.handler(w, req, params)
}

func (r *Router) normalize(rawPath string) string {
	if i := strings.IndexByte(rawPath, '?'); i >= 0 {
		rawPath = rawPath[:i]
	}
	if r.basePath != "" && hasPathPrefix(rawPath, r.basePath) {
		rawPath = rawPath[len(r.basePath):]
	}
	return normalizeLeadingSlash(rawPath)
}

func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

func writeNotFound(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, utils.Failure("Route not found", nil), http.StatusNotFound)
}
