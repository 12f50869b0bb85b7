package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(label string) Handler {
	return func(req *Request) (*Response, error) {
		return OK(map[string]string{"label": label, "id": req.Param("id")}), nil
	}
}

func TestDispatchBindsPathParams(t *testing.T) {
	r := New()
	r.Handle("GET", "/apiv2/internal/users/:id", okHandler("get"))

	resp, err := r.Dispatch(&Request{Method: "GET", Path: "/apiv2/internal/users/u1"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestDispatchPrefersMoreSpecificPattern(t *testing.T) {
	r := New()
	r.Handle("GET", "/apiv2/internal/games/:id", okHandler("byID"))
	r.Handle("GET", "/apiv2/internal/games/:id/rounds", okHandler("rounds"))

	resp, err := r.Dispatch(&Request{Method: "GET", Path: "/apiv2/internal/games/g1/rounds"})
	require.NoError(t, err)

	assert.Contains(t, string(resp.Body), "rounds")
}

func TestDispatchUnknownPathIsNotFound(t *testing.T) {
	r := New()
	r.Handle("GET", "/apiv2/internal/users/:id", okHandler("get"))

	resp, err := r.Dispatch(&Request{Method: "GET", Path: "/nope"})
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDispatchKnownPathWrongMethodIsMethodNotAllowed(t *testing.T) {
	r := New()
	r.Handle("GET", "/apiv2/internal/users/:id", okHandler("get"))

	resp, err := r.Dispatch(&Request{Method: "DELETE", Path: "/apiv2/internal/users/u1"})
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}

func TestDispatchRunsGlobalThenRouteMiddlewareInOrder(t *testing.T) {
	var order []string

	track := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(req *Request) (*Response, error) {
				order = append(order, name)
				return next(req)
			}
		}
	}

	r := New(track("global"))
	r.Handle("GET", "/x", okHandler("h"), track("route"))

	_, err := r.Dispatch(&Request{Method: "GET", Path: "/x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"global", "route"}, order)
}

func TestMiddlewareCanShortCircuit(t *testing.T) {
	deny := func(next Handler) Handler {
		return func(req *Request) (*Response, error) {
			return NewProblem(403, "ForbiddenError", "no", req.Path, ""), nil
		}
	}

	r := New(deny)
	r.Handle("GET", "/x", okHandler("h"))

	resp, err := r.Dispatch(&Request{Method: "GET", Path: "/x"})
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
