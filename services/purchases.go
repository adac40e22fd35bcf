package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// PurchaseLine is one article line of a supplier purchase. MajPrixArticle asks
// the backend to update the article's reference prices from this line.
type PurchaseLine struct {
	Article        int64  `json:"article"`
	Quantity       int    `json:"quantite"`
	UnitBuyPrice   Amount `json:"prix_achat_unitaire"`
	UnitSellPrice  Amount `json:"prix_vente_unitaire"`
	MajPrixArticle bool   `json:"maj_prix_article"`
}

// PurchasePayload creates or replaces a purchase.
type PurchasePayload struct {
	Supplier     string         `json:"fournisseur,omitempty"`
	PurchaseDate *string        `json:"date_achat,omitempty"`
	Note         string         `json:"note,omitempty"`
	Lines        []PurchaseLine `json:"lignes"`
}

// Purchase is a supplier purchase as returned by the backend.
type Purchase struct {
	ID           int64           `json:"id"`
	Supplier     string          `json:"fournisseur"`
	PurchaseDate *string         `json:"date_achat"`
	Note         string          `json:"note"`
	Total        Amount          `json:"total"`
	Lines        json.RawMessage `json:"lignes"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type PurchasesService struct {
	gw *gateway.Gateway
}

func NewPurchases(gw *gateway.Gateway) *PurchasesService {
	return &PurchasesService{gw: gw}
}

func (s *PurchasesService) List(ctx context.Context, params url.Values) ([]Purchase, error) {
	res, err := s.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "achats/achats/", Query: params})
	if err != nil {
		return nil, err
	}
	return unwrapList[Purchase](res.Body)
}

func (s *PurchasesService) Create(ctx context.Context, payload PurchasePayload) (*Purchase, error) {
	var p Purchase
	if err := s.gw.Post(ctx, "achats/achats/", payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PurchasesService) Update(ctx context.Context, id int64, payload PurchasePayload) (*Purchase, error) {
	var p Purchase
	if err := s.gw.Put(ctx, fmt.Sprintf("achats/achats/%d/", id), payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PurchasesService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("achats/achats/%d/", id))
}
