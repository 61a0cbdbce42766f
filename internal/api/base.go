package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/0xJijimi/estfor-api/client/internal/errors"
	"github.com/0xJijimi/estfor-api/client/internal/query"
	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// Every endpoint in this package is one of three shapes: a filtered list
// returning a Page, a single record addressed by path segments, or a POST
// batch lookup returning a bare array. The helpers below implement the
// shared request/response contract; endpoint files only name the resource,
// the operation and the declared type.

// list fetches a paginated resource.
func list[T any](ctx context.Context, httpClient types.HTTPClient, baseURL, resource, op string, filter any, segments ...string) (*types.Page[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url, err := query.Target(baseURL, resource, filter, segments...)
	if err != nil {
		return nil, err
	}
	return getJSON[types.Page[T]](ctx, httpClient, url, op)
}

// one fetches a single record addressed by path segments.
func one[T any](ctx context.Context, httpClient types.HTTPClient, baseURL, resource, op string, segments ...string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url, err := query.Target(baseURL, resource, nil, segments...)
	if err != nil {
		return nil, err
	}
	return getJSON[T](ctx, httpClient, url, op)
}

// array fetches a resource that answers with a bare JSON array.
func array[T any](ctx context.Context, httpClient types.HTTPClient, baseURL, resource, op string, segments ...string) ([]T, error) {
	out, err := one[[]T](ctx, httpClient, baseURL, resource, op, segments...)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// multi POSTs body to {resource}/multi and decodes the bare array answer.
func multi[T any](ctx context.Context, httpClient types.HTTPClient, baseURL, resource, op string, body any) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	url, err := query.Target(baseURL, resource, nil, "multi")
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var out []T
	if err := do(httpClient, httpReq, op, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ids keeps a batch body's id field a JSON array when the caller passes nil.
func ids(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func getJSON[T any](ctx context.Context, httpClient types.HTTPClient, url, op string) (*T, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := do(httpClient, httpReq, op, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends httpReq once. A non-2xx status fails with a RequestError without
// reading the body; otherwise the body is decoded into out.
func do(httpClient types.HTTPClient, httpReq *http.Request, op string, out any) error {
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !apierrors.IsSuccess(resp.StatusCode) {
		return apierrors.NewHTTPError(op, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
