package services

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Paginated is the DRF page envelope used by most list endpoints.
type Paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// unwrapList decodes a list endpoint that returns either a plain JSON array or
// a page envelope, depending on backend pagination settings.
func unwrapList[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var plain []T
	if err := json.Unmarshal(data, &plain); err == nil {
		return plain, nil
	}
	var page Paginated[T]
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, errors.Wrap(err, "[unwrapList] unexpected list payload")
	}
	return page.Results, nil
}
