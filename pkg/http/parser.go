package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/taldoflemis/brain.test-gateway/pkg/strings"
)

var ErrParsingError = errors.New("failed to parse data")

type DataExtractor[T any] func(provider dataProvider) (T, error)

func ParseRequest[T any](r *nethttp.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	return parse(requestDataProvider{r}, extractor, lastErr)
}

func ParseResponse[T any](r Response, extractor DataExtractor[T], lastErr error) (T, error) {
	return parse(responseDataProvider{r.RawResponse()}, extractor, lastErr)
}

func parse[T any](provider dataProvider, extractor DataExtractor[T], lastErr error) (T, error) {
	var result T
	if lastErr != nil {
		return result, lastErr
	}

	result, err := extractor(provider)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return result, nil
}

func JSONBody[T any]() DataExtractor[T] {
	return func(provider dataProvider) (T, error) {
		var result T
		body, err := provider.Body()
		if err != nil {
			return result, fmt.Errorf("get body: %w", err)
		}

		if err = json.Unmarshal(body, &result); err != nil {
			return result, fmt.Errorf("decode json body: %w", err)
		}

		return result, nil
	}
}

func PathParameter[T strings.SupportedValueParsingTypes](name string) DataExtractor[T] {
	return func(provider dataProvider) (T, error) {
		var result T
		value, err := provider.PathParameter(name)
		if err != nil {
			return result, err
		}

		return strings.ParseTypedValue[T](value)
	}
}

type dataProvider interface {
	Body() ([]byte, error)
	PathParameter(name string) (string, error)
}

type requestDataProvider struct {
	r *nethttp.Request
}

func (p requestDataProvider) Body() ([]byte, error) {
	return io.ReadAll(p.r.Body)
}

func (p requestDataProvider) PathParameter(name string) (string, error) {
	value, ok := mux.Vars(p.r)[name]
	if !ok {
		return "", fmt.Errorf("path parameter %s is not found", name)
	}

	return value, nil
}

type responseDataProvider struct {
	r *nethttp.Response
}

func (p responseDataProvider) Body() ([]byte, error) {
	return io.ReadAll(p.r.Body)
}

func (p responseDataProvider) PathParameter(string) (string, error) {
	return "", errors.New("response has no path parameters")
}
