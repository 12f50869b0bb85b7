// Package middleware holds the global and per-route middleware the
// router composes ahead of every terminal handler: CORS, content-type
// gate, JWT authentication, and the role guard.
package middleware

import "github.com/vku007/objectapi/internal/httpapi"

const (
	allowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	allowHeaders = "content-type, authorization, if-match, if-none-match"
)

// CORS answers OPTIONS preflight requests directly with 204 and no
// body, bypassing every later middleware including authentication,
// and annotates every other response with the allow-origin header.
func CORS(origin string) httpapi.Middleware {
	return func(next httpapi.Handler) httpapi.Handler {
		return func(req *httpapi.Request) (*httpapi.Response, error) {
			if req.Method == "OPTIONS" {
				return annotate(httpapi.NoContent(), origin), nil
			}

			resp, err := next(req)
			if err != nil {
				return nil, err
			}

			return annotate(resp, origin), nil
		}
	}
}

func annotate(resp *httpapi.Response, origin string) *httpapi.Response {
	resp.WithHeader("Access-Control-Allow-Origin", origin)
	resp.WithHeader("Access-Control-Allow-Methods", allowMethods)
	resp.WithHeader("Access-Control-Allow-Headers", allowHeaders)

	return resp
}
