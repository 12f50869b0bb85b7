package httpapi

import "strings"

// Handler terminates a request, returning the response to send.
type Handler func(req *Request) (*Response, error)

// Middleware wraps a Handler, either short-circuiting with its own
// response or delegating to next.
type Middleware func(next Handler) Handler

// Chain composes mws around h so that mws[0] runs first.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}

type route struct {
	method     string
	segments   []string
	middleware []Middleware
	handler    Handler
}

// Router dispatches requests by method and path pattern. Patterns use
// ":name" segments bound into Request.Params; a longer, more specific
// pattern takes precedence over a shorter or less specific one.
type Router struct {
	routes     []route
	middleware []Middleware
}

// New returns a Router with global middleware applied, in order,
// ahead of every route's own middleware.
func New(global ...Middleware) *Router {
	return &Router{middleware: global}
}

// Handle registers handler for method and pattern, with optional
// per-route middleware run after the router's global middleware.
func (r *Router) Handle(method, pattern string, handler Handler, mw ...Middleware) {
	r.routes = append(r.routes, route{
		method:     method,
		segments:   splitPath(pattern),
		middleware: mw,
		handler:    handler,
	})
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}

// match reports whether segments matches pattern segments, binding
// ":name" segments into params. specificity is the count of literal
// (non-bound) segments, used to rank competing matches.
func match(patternSegments, pathSegments []string) (params map[string]string, specificity int, ok bool) {
	if len(patternSegments) != len(pathSegments) {
		return nil, 0, false
	}

	params = make(map[string]string)

	for i, seg := range patternSegments {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = pathSegments[i]
			continue
		}

		if seg != pathSegments[i] {
			return nil, 0, false
		}

		specificity++
	}

	return params, specificity, true
}

// Dispatch finds the best-matching route for req and runs its
// middleware chain, or returns NotFound/MethodNotAllowed.
func (r *Router) Dispatch(req *Request) (*Response, error) {
	pathSegments := splitPath(req.Path)

	var (
		best           *route
		bestParams     map[string]string
		bestSpecificity = -1
		anyMethodMatch bool
	)

	for i := range r.routes {
		rt := &r.routes[i]

		params, specificity, ok := match(rt.segments, pathSegments)
		if !ok {
			continue
		}

		anyMethodMatch = true

		if rt.method != req.Method {
			continue
		}

		if specificity > bestSpecificity {
			best = rt
			bestParams = params
			bestSpecificity = specificity
		}
	}

	if best == nil {
		if anyMethodMatch {
			return Chain(methodNotAllowedHandler(req), r.middleware...)(req)
		}

		return Chain(notFoundHandler(req), r.middleware...)(req)
	}

	req.Params = bestParams

	h := Chain(best.handler, append(append([]Middleware{}, r.middleware...), best.middleware...)...)

	return h(req)
}

func notFoundHandler(req *Request) Handler {
	return func(*Request) (*Response, error) {
		return ProblemFromError(notFoundError(req.Path), req.Path), nil
	}
}

func methodNotAllowedHandler(req *Request) Handler {
	return func(*Request) (*Response, error) {
		return ProblemFromError(methodNotAllowedError(req.Method, req.Path), req.Path), nil
	}
}
