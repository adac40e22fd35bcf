package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// ShipmentStatus tracks a delivery through its lifecycle.
type ShipmentStatus string

const (
	ShipmentToPrepare  ShipmentStatus = "A_PREPARER"
	ShipmentInDelivery ShipmentStatus = "EN_LIVRAISON"
	ShipmentDelivered  ShipmentStatus = "LIVREE"
	ShipmentCancelled  ShipmentStatus = "ANNULEE"
	ShipmentPostponed  ShipmentStatus = "REPORTEE"
)

// ShipmentEvent is one entry of a shipment's audit trail.
type ShipmentEvent struct {
	ID         int64           `json:"id"`
	FromStatus string          `json:"from_statut"`
	ToStatus   string          `json:"to_statut"`
	Message    string          `json:"message"`
	Meta       json.RawMessage `json:"meta"`
	Actor      *int64          `json:"actor"`
	ActorName  *string         `json:"actor_name"`
	CreatedAt  string          `json:"created_at"`
}

// Shipment is the delivery record attached to a sales order.
type Shipment struct {
	ID          int64           `json:"id"`
	Order       int64           `json:"commande"`
	OrderDetail json.RawMessage `json:"commande_detail"`
	Status      ShipmentStatus  `json:"statut"`
	PlannedDate *string         `json:"date_prevue"`
	ActualDate  *string         `json:"date_reelle"`
	Reason      string          `json:"raison"`
	Comment     string          `json:"commentaire"`
	UpdatedBy   *int64          `json:"updated_by"`
	Events      []ShipmentEvent `json:"events"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// SchedulableOrder is a delivered-pending order awaiting a delivery date.
type SchedulableOrder struct {
	ID             int64           `json:"id"`
	Status         string          `json:"statut"`
	DeliveryDate   *string         `json:"date_livraison"`
	PlacePrecision string          `json:"precision_lieu"`
	ClientName     string          `json:"client_nom"`
	ClientContact  string          `json:"client_contact"`
	ClientAddress  string          `json:"client_adresse"`
	ShipmentID     *int64          `json:"livraison_id"`
	ShipmentStatus *ShipmentStatus `json:"livraison_statut"`
	PlannedDate    *string         `json:"date_prevue"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// ShipmentAction carries the optional fields of a status transition.
type ShipmentAction struct {
	Reason      string  `json:"raison,omitempty"`
	Comment     string  `json:"commentaire,omitempty"`
	PlannedDate *string `json:"date_prevue,omitempty"`
}

type ShipmentsService struct {
	gw *gateway.Gateway
}

func NewShipments(gw *gateway.Gateway) *ShipmentsService {
	return &ShipmentsService{gw: gw}
}

func (s *ShipmentsService) List(ctx context.Context, params url.Values) (*Paginated[Shipment], error) {
	var page Paginated[Shipment]
	if err := s.gw.Get(ctx, "conflivraison/livraisons/", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// History returns the shipment with its full event trail.
func (s *ShipmentsService) History(ctx context.Context, id int64) (*Shipment, error) {
	var sh Shipment
	if err := s.gw.Get(ctx, fmt.Sprintf("conflivraison/livraisons/%d/history/", id), nil, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *ShipmentsService) ListSchedulableOrders(ctx context.Context, params url.Values) (*Paginated[SchedulableOrder], error) {
	var page Paginated[SchedulableOrder]
	if err := s.gw.Get(ctx, "conflivraison/livraisons/commandes-a-programmer/", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ScheduleOrder attaches a delivery date to an order, creating its shipment.
func (s *ShipmentsService) ScheduleOrder(ctx context.Context, orderID int64, deliveryDate string) error {
	body := map[string]any{"commande_id": orderID, "date_livraison": deliveryDate}
	return s.gw.Post(ctx, "conflivraison/livraisons/programmer-commande/", body, nil)
}

func (s *ShipmentsService) StartDelivery(ctx context.Context, id int64, action ShipmentAction) (*Shipment, error) {
	return s.transition(ctx, id, "en-livraison", action)
}

func (s *ShipmentsService) Deliver(ctx context.Context, id int64, action ShipmentAction) (*Shipment, error) {
	return s.transition(ctx, id, "livrer", action)
}

func (s *ShipmentsService) Cancel(ctx context.Context, id int64, action ShipmentAction) (*Shipment, error) {
	return s.transition(ctx, id, "annuler", action)
}

func (s *ShipmentsService) Postpone(ctx context.Context, id int64, action ShipmentAction) (*Shipment, error) {
	return s.transition(ctx, id, "reporter", action)
}

func (s *ShipmentsService) transition(ctx context.Context, id int64, verb string, action ShipmentAction) (*Shipment, error) {
	var sh Shipment
	path := fmt.Sprintf("conflivraison/livraisons/%d/%s/", id, verb)
	if err := s.gw.Post(ctx, path, action, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

// SyncFromOrders creates missing shipments for orders already in delivery.
func (s *ShipmentsService) SyncFromOrders(ctx context.Context) (int, error) {
	var res struct {
		Created int `json:"created"`
	}
	if err := s.gw.Post(ctx, "conflivraison/livraisons/sync-from-commandes/", nil, &res); err != nil {
		return 0, err
	}
	return res.Created, nil
}
