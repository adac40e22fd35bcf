package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// PaymentStatus mirrors the backend's payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "EN_ATTENTE"
	PaymentPaid      PaymentStatus = "PAYEE"
	PaymentCancelled PaymentStatus = "ANNULEE"
)

// PaymentMode is how an order was paid.
type PaymentMode string

const (
	PayCash        PaymentMode = "ESPECE"
	PayMvola       PaymentMode = "MVOLA"
	PayOrangeMoney PaymentMode = "ORANGE_MONEY"
)

// CollectableOrder is an order as seen from the cash collection desk.
type CollectableOrder struct {
	ID            int64   `json:"id"`
	Status        string  `json:"statut"`
	DeliveryDate  *string `json:"date_livraison"`
	ClientName    string  `json:"client_nom"`
	ClientContact string  `json:"client_contact"`
	OrderTotal    Amount  `json:"total_commande"`

	PaymentStatus    PaymentStatus `json:"paiement_statut"`
	PaymentMode      string        `json:"paiement_mode"`
	PaymentReference string        `json:"paiement_reference"`
	CollectedAt      *string       `json:"encaisse_le"`

	CreatedAt string `json:"created_at"`
}

// CollectPayload records a payment against an order.
type CollectPayload struct {
	Mode      PaymentMode `json:"mode"`
	Reference string      `json:"reference,omitempty"`
	Note      string      `json:"note,omitempty"`
}

type CashdeskService struct {
	gw *gateway.Gateway
}

func NewCashdesk(gw *gateway.Gateway) *CashdeskService {
	return &CashdeskService{gw: gw}
}

func (s *CashdeskService) ListOrders(ctx context.Context, params url.Values) (*Paginated[CollectableOrder], error) {
	var page Paginated[CollectableOrder]
	if err := s.gw.Get(ctx, "encaissement/commandes/", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *CashdeskService) GetOrder(ctx context.Context, id int64) (*CollectableOrder, error) {
	var o CollectableOrder
	if err := s.gw.Get(ctx, fmt.Sprintf("encaissement/commandes/%d/", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Collect marks the order as paid.
func (s *CashdeskService) Collect(ctx context.Context, id int64, payload CollectPayload) error {
	return s.gw.Post(ctx, fmt.Sprintf("encaissement/commandes/%d/encaisser/", id), payload, nil)
}

// CancelPayment voids a recorded payment.
func (s *CashdeskService) CancelPayment(ctx context.Context, id int64, note string) error {
	body := map[string]string{}
	if note != "" {
		body["note"] = note
	}
	return s.gw.Post(ctx, fmt.Sprintf("encaissement/commandes/%d/annuler-paiement/", id), body, nil)
}
