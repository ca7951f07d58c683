package http

import (
	"context"
	"io"
	nethttp "net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

type (
	Route struct {
		Method string
		URL    string
	}

	Client interface {
		NewRequest(ctx context.Context, route Route) Request
		With(opts ...ClientOption) Client
	}

	Request interface {
		SetHeader(key, value string) Request
		SetAuthToken(token string) Request
		SetPathParam(name, value string) Request
		SetQueryParam(name, value string) Request
		SetJSONBody(data any) Request
		Send() (Response, error)
	}

	Response interface {
		StatusCode() int
		RawResponse() *nethttp.Response
		Close()
	}

	ClientOption func(*clientImpl)
)

type clientImpl struct {
	restClient *resty.Client
	opts       []ClientOption
}

func NewClient(opts ...ClientOption) Client {
	client := &clientImpl{
		// raw response bodies are parsed by the caller, see ParseResponse
		restClient: resty.New().SetDoNotParseResponse(true),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *clientImpl) NewRequest(ctx context.Context, route Route) Request {
	return request{
		route: route,
		impl:  c.restClient.NewRequest().SetContext(ctx),
	}
}

func (c *clientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

type request struct {
	route Route
	impl  *resty.Request
}

func (r request) SetHeader(key, value string) Request {
	r.impl.SetHeader(key, value)
	return r
}

func (r request) SetAuthToken(token string) Request {
	r.impl.SetAuthToken(token)
	return r
}

func (r request) SetPathParam(name, value string) Request {
	r.impl.SetPathParam(name, value)
	return r
}

func (r request) SetQueryParam(name, value string) Request {
	r.impl.SetQueryParam(name, value)
	return r
}

func (r request) SetJSONBody(data any) Request {
	r.impl.SetHeader("Content-Type", "application/json")
	r.impl.SetBody(data)
	return r
}

func (r request) Send() (Response, error) {
	resp, err := r.impl.Execute(r.route.Method, r.route.URL)
	if err != nil {
		return nil, err
	}

	return response{resp}, nil
}

type response struct {
	impl *resty.Response
}

func (r response) StatusCode() int {
	return r.impl.StatusCode()
}

func (r response) RawResponse() *nethttp.Response {
	return r.impl.RawResponse
}

func (r response) Close() {
	body := r.impl.RawBody()
	if body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func WithClientBaseURL(url string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetBaseURL(url)
	}
}

func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.SetHeader(key, value)
	}
}
