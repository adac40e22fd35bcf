package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// Client is a customer record.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"nom"`
	Address string `json:"adresse,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// ClientPayload creates or replaces a client.
type ClientPayload struct {
	Name    string `json:"nom"`
	Address string `json:"adresse,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// ClientPatch updates only the non-nil fields.
type ClientPatch struct {
	Name    *string `json:"nom,omitempty"`
	Address *string `json:"adresse,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

type ClientsService struct {
	gw *gateway.Gateway
}

func NewClients(gw *gateway.Gateway) *ClientsService {
	return &ClientsService{gw: gw}
}

func (s *ClientsService) List(ctx context.Context) ([]Client, error) {
	res, err := s.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "clients/"})
	if err != nil {
		return nil, err
	}
	return unwrapList[Client](res.Body)
}

func (s *ClientsService) Create(ctx context.Context, payload ClientPayload) (*Client, error) {
	var c Client
	if err := s.gw.Post(ctx, "clients/", payload, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClientsService) Retrieve(ctx context.Context, id int64) (*Client, error) {
	var c Client
	if err := s.gw.Get(ctx, fmt.Sprintf("clients/%d/", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClientsService) Update(ctx context.Context, id int64, payload ClientPayload) (*Client, error) {
	var c Client
	if err := s.gw.Put(ctx, fmt.Sprintf("clients/%d/", id), payload, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClientsService) Patch(ctx context.Context, id int64, patch ClientPatch) (*Client, error) {
	var c Client
	if err := s.gw.Patch(ctx, fmt.Sprintf("clients/%d/", id), patch, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClientsService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("clients/%d/", id))
}
