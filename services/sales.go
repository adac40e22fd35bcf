package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// OrderStatus values are aligned with the backend.
type OrderStatus string

const (
	OrderPending    OrderStatus = "EN_ATTENTE"
	OrderInDelivery OrderStatus = "EN_LIVRAISON"
	OrderDelivered  OrderStatus = "LIVREE"
	OrderCancelled  OrderStatus = "ANNULEE"
)

// PlaceCategory classifies delivery places for fee calculation.
type PlaceCategory string

const (
	PlaceCity        PlaceCategory = "VILLE"
	PlaceSuburb      PlaceCategory = "PERIPHERIE"
	PlaceOuterSuburb PlaceCategory = "PLUS_PERIPHERIE"
	PlaceProvince    PlaceCategory = "PROVINCE"
	PlaceOther       PlaceCategory = "AUTRE"
)

type ArticleSuggestion struct {
	ID            int64  `json:"id"`
	ProductName   string `json:"nom_produit"`
	Reference     string `json:"reference"`
	SalePrice     Amount `json:"prix_vente"`
	StockQuantity int    `json:"quantite_stock"`
	PhotoURL      string `json:"photo_url,omitempty"`
}

type ClientSuggestion struct {
	ID      int64  `json:"id"`
	Name    string `json:"nom"`
	Contact string `json:"contact,omitempty"`
}

type PlaceSuggestion struct {
	ID         int64         `json:"id"`
	Name       string        `json:"nom"`
	Category   PlaceCategory `json:"categorie"`
	DefaultFee Amount        `json:"default_frais"`
	Active     bool          `json:"actif,omitempty"`
}

// PageOption is a sales page (storefront) an order can be attached to.
type PageOption struct {
	ID      int64  `json:"id"`
	Name    string `json:"nom"`
	Link    string `json:"lien"`
	LogoURL string `json:"logo_url,omitempty"`
	Active  bool   `json:"actif,omitempty"`
}

// OrderLine references an article and a quantity.
type OrderLine struct {
	Article  int64 `json:"article"`
	Quantity int   `json:"quantite"`
}

// ClientInput either references an existing client by ID or creates one from
// name/contact.
type ClientInput struct {
	ID      *int64  `json:"id,omitempty"`
	Name    *string `json:"nom,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

// PlaceInput either references an existing delivery place or names a new one.
type PlaceInput struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"nom,omitempty"`
}

// OrderPayload creates or replaces a sales order. The status is owned by the
// backend and is deliberately absent.
type OrderPayload struct {
	Page           *int64      `json:"page,omitempty"`
	Note           string      `json:"note,omitempty"`
	PlacePrecision string      `json:"precision_lieu,omitempty"`
	DeliveryDate   *string     `json:"date_livraison,omitempty"`
	Client         ClientInput `json:"client_input"`
	Place          PlaceInput  `json:"lieu_input"`
	FeeOverride    *Amount     `json:"frais_override,omitempty"`
	Lines          []OrderLine `json:"lignes"`
}

// ClientLastPlace is the last delivery place recorded for a client, used to
// prefill order forms. The backend returns null when the client has none.
type ClientLastPlace struct {
	PlaceID        int64  `json:"lieu_id"`
	PlaceName      string `json:"lieu_nom"`
	AutoFee        Amount `json:"frais_auto"`
	PlacePrecision string `json:"precision_lieu"`
}

type SalesService struct {
	gw *gateway.Gateway
}

func NewSales(gw *gateway.Gateway) *SalesService {
	return &SalesService{gw: gw}
}

func (s *SalesService) List(ctx context.Context, params url.Values) (*Paginated[json.RawMessage], error) {
	var page Paginated[json.RawMessage]
	if err := s.gw.Get(ctx, "vente/commandes/", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *SalesService) Create(ctx context.Context, payload OrderPayload) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.gw.Post(ctx, "vente/commandes/", payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *SalesService) Update(ctx context.Context, id int64, payload OrderPayload) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.gw.Put(ctx, fmt.Sprintf("vente/commandes/%d/", id), payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *SalesService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("vente/commandes/%d/", id))
}

func (s *SalesService) SuggestArticles(ctx context.Context, q string) ([]ArticleSuggestion, error) {
	var items []ArticleSuggestion
	err := s.gw.Get(ctx, "vente/commandes/suggest/articles/", url.Values{"q": {q}}, &items)
	return items, err
}

func (s *SalesService) SuggestClients(ctx context.Context, q string) ([]ClientSuggestion, error) {
	var items []ClientSuggestion
	err := s.gw.Get(ctx, "vente/commandes/suggest/clients/", url.Values{"q": {q}}, &items)
	return items, err
}

func (s *SalesService) SuggestPlaces(ctx context.Context, q string) ([]PlaceSuggestion, error) {
	var items []PlaceSuggestion
	err := s.gw.Get(ctx, "vente/commandes/suggest/lieux/", url.Values{"q": {q}}, &items)
	return items, err
}

// ClientLastPlace returns nil when the client has no recorded delivery place.
func (s *SalesService) ClientLastPlace(ctx context.Context, clientID int64) (*ClientLastPlace, error) {
	var last *ClientLastPlace
	query := url.Values{"client_id": {strconv.FormatInt(clientID, 10)}}
	if err := s.gw.Get(ctx, "vente/commandes/client-last-lieu/", query, &last); err != nil {
		return nil, err
	}
	return last, nil
}

// ListActivePages returns the active sales pages an order can be attached to.
func (s *SalesService) ListActivePages(ctx context.Context) ([]PageOption, error) {
	res, err := s.gw.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "configuration/pages/",
		Query:  url.Values{"actif": {"true"}},
	})
	if err != nil {
		return nil, err
	}
	return unwrapList[PageOption](res.Body)
}
