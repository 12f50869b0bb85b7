// Package gateway translates AWS API Gateway proxy-integration events
// into internal/httpapi requests and responses, so the request-handling
// core never depends on the Lambda event shape.
package gateway

import (
	"encoding/base64"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/vku007/objectapi/internal/httpapi"
)

// ToRequest builds an httpapi.Request from an API Gateway proxy event.
func ToRequest(event events.APIGatewayProxyRequest) *httpapi.Request {
	headers := make(httpapi.Headers, len(event.Headers))
	for k, v := range event.Headers {
		headers[k] = v
	}

	query := make(map[string]string, len(event.QueryStringParameters))
	for k, v := range event.QueryStringParameters {
		query[k] = v
	}

	params := make(map[string]string, len(event.PathParameters))
	for k, v := range event.PathParameters {
		params[k] = v
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(event.Body); err == nil {
			body = decoded
		}
	}

	return &httpapi.Request{
		Method:    strings.ToUpper(event.HTTPMethod),
		Path:      event.Path,
		Headers:   headers,
		Query:     query,
		Params:    params,
		Body:      body,
		RequestID: event.RequestContext.RequestID,
		Cookies:   cookiesFromHeader(headers.Get("Cookie")),
	}
}

// FromResponse builds an API Gateway proxy response from an httpapi.Response.
func FromResponse(resp *httpapi.Response) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(resp.Headers))
	for k, v := range resp.Headers {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}
}

// cookiesFromHeader parses a "Cookie" request header into a name-value
// map, the same pairs a browser would have sent.
func cookiesFromHeader(header string) map[string]string {
	cookies := map[string]string{}
	if header == "" {
		return cookies
	}

	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		cookies[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return cookies
}
