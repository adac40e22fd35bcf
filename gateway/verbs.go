package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// JSON verb helpers used by the resource services. out may be nil when the
// caller does not care about the response body.

func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

// GetBinary fetches a binary resource (e.g. a PDF) and returns the raw bytes.
func (g *Gateway) GetBinary(ctx context.Context, path string, query url.Values) ([]byte, error) {
	res, err := g.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	_, err := g.Do(ctx, Request{Method: http.MethodDelete, Path: path})
	return err
}

func (g *Gateway) PostForm(ctx context.Context, path string, form *Form, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodPost, Path: path, Form: form})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

func (g *Gateway) PutForm(ctx context.Context, path string, form *Form, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodPut, Path: path, Form: form})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

func (g *Gateway) PatchForm(ctx context.Context, path string, form *Form, out any) error {
	res, err := g.Do(ctx, Request{Method: http.MethodPatch, Path: path, Form: form})
	if err != nil {
		return err
	}
	return res.Decode(out)
}
