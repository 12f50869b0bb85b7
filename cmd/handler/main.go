// The handler command is the Lambda entry point: one-time lazy init of
// the application on cold start, then per-invocation dispatch through
// the router, translating the API Gateway event shape at the boundary.
package main

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/bootstrap"
	"github.com/vku007/objectapi/internal/gateway"
	"github.com/vku007/objectapi/internal/httpapi"
	"github.com/vku007/objectapi/internal/mlog"
)

var (
	initOnce sync.Once
	app      *bootstrap.App
	initErr  error
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	initOnce.Do(func() {
		app, initErr = bootstrap.New(ctx)
	})

	if initErr != nil {
		resp := httpapi.ProblemFromError(apperr.InternalError{Err: initErr}, event.Path)
		return gateway.FromResponse(resp), nil
	}

	req := gateway.ToRequest(event)
	req.Ctx = mlog.ContextWithLogger(ctx, app.Logger)

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	resp := dispatch(req)

	return gateway.FromResponse(resp), nil
}

// dispatch runs the router, converting any escaped error or panic into
// a generic internal-error problem so the client never sees a raw
// failure or a provider-level 502.
func dispatch(req *httpapi.Request) (resp *httpapi.Response) {
	logger := mlog.FromContext(req.Context())

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic handling %s %s: %v", req.Method, req.Path, r)
			resp = httpapi.ProblemFromError(apperr.InternalError{}, req.Path).
				WithHeader("Access-Control-Allow-Origin", app.Config.CorsOrigin)
		}
	}()

	resp, err := app.Router.Dispatch(req)
	if err != nil {
		logger.Errorf("unhandled error on %s %s: %v", req.Method, req.Path, err)
		return httpapi.ProblemFromError(apperr.InternalError{Err: err}, req.Path).
			WithHeader("Access-Control-Allow-Origin", app.Config.CorsOrigin)
	}

	return resp
}

func main() {
	lambda.Start(handler)
}
