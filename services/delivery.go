package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// DeliveryPlace is a configured delivery destination.
type DeliveryPlace struct {
	ID         int64         `json:"id"`
	Name       string        `json:"nom"`
	Category   PlaceCategory `json:"categorie"`
	Active     bool          `json:"actif"`
	DefaultFee Amount        `json:"default_frais"`
	CreatedAt  string        `json:"created_at,omitempty"`
	UpdatedAt  string        `json:"updated_at,omitempty"`
}

// DeliveryFee is a fee record for a place, optionally overridden.
type DeliveryFee struct {
	ID          int64          `json:"id"`
	Place       int64          `json:"lieu"`
	PlaceDetail *DeliveryPlace `json:"lieu_detail,omitempty"`
	ComputedFee Amount         `json:"frais_calcule"`
	FeeOverride *Amount        `json:"frais_override"`
	FinalFee    Amount         `json:"frais_final"`
	Note        string         `json:"note"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}

type PlacePayload struct {
	Name     string        `json:"nom"`
	Category PlaceCategory `json:"categorie"`
	Active   *bool         `json:"actif,omitempty"`
}

type PlacePatch struct {
	Name     *string        `json:"nom,omitempty"`
	Category *PlaceCategory `json:"categorie,omitempty"`
	Active   *bool          `json:"actif,omitempty"`
}

type FeePayload struct {
	Place       int64   `json:"lieu"`
	FeeOverride *Amount `json:"frais_override,omitempty"`
	Note        string  `json:"note,omitempty"`
}

type FeePatch struct {
	Place       *int64  `json:"lieu,omitempty"`
	FeeOverride *Amount `json:"frais_override,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// DeliveryService manages delivery places and fees.
type DeliveryService struct {
	gw *gateway.Gateway
}

func NewDelivery(gw *gateway.Gateway) *DeliveryService {
	return &DeliveryService{gw: gw}
}

func (s *DeliveryService) ListPlaces(ctx context.Context, params url.Values) ([]DeliveryPlace, error) {
	res, err := s.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "livraison/lieux/", Query: params})
	if err != nil {
		return nil, err
	}
	return unwrapList[DeliveryPlace](res.Body)
}

func (s *DeliveryService) CreatePlace(ctx context.Context, payload PlacePayload) (*DeliveryPlace, error) {
	var p DeliveryPlace
	if err := s.gw.Post(ctx, "livraison/lieux/", payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DeliveryService) UpdatePlace(ctx context.Context, id int64, patch PlacePatch) (*DeliveryPlace, error) {
	var p DeliveryPlace
	if err := s.gw.Patch(ctx, fmt.Sprintf("livraison/lieux/%d/", id), patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DeliveryService) DeletePlace(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("livraison/lieux/%d/", id))
}

func (s *DeliveryService) ListFees(ctx context.Context, params url.Values) ([]DeliveryFee, error) {
	res, err := s.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "livraison/frais/", Query: params})
	if err != nil {
		return nil, err
	}
	return unwrapList[DeliveryFee](res.Body)
}

// ComputeFee asks the backend what a fee would be without creating it.
func (s *DeliveryService) ComputeFee(ctx context.Context, payload FeePayload) (*DeliveryFee, error) {
	var f DeliveryFee
	if err := s.gw.Post(ctx, "livraison/frais/calculer/", payload, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *DeliveryService) CreateFee(ctx context.Context, payload FeePayload) (*DeliveryFee, error) {
	var f DeliveryFee
	if err := s.gw.Post(ctx, "livraison/frais/", payload, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *DeliveryService) UpdateFee(ctx context.Context, id int64, patch FeePatch) (*DeliveryFee, error) {
	var f DeliveryFee
	if err := s.gw.Patch(ctx, fmt.Sprintf("livraison/frais/%d/", id), patch, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *DeliveryService) DeleteFee(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("livraison/frais/%d/", id))
}
