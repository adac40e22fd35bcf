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

// ExpenseStatus mirrors the backend's charge states.
type ExpenseStatus string

const (
	ExpenseDraft     ExpenseStatus = "BROUILLON"
	ExpensePaid      ExpenseStatus = "PAYEE"
	ExpenseCancelled ExpenseStatus = "ANNULEE"
)

// ExpensePaymentMode is how an expense was settled.
type ExpensePaymentMode string

const (
	ExpenseCash        ExpensePaymentMode = "CASH"
	ExpenseMvola       ExpensePaymentMode = "MVOLA"
	ExpenseOrangeMoney ExpensePaymentMode = "ORANGE_MONEY"
	ExpenseVisa        ExpensePaymentMode = "VISA"
	ExpenseOtherMode   ExpensePaymentMode = "AUTRE"
)

// ExpenseCategory groups expenses.
type ExpenseCategory struct {
	ID     int64  `json:"id"`
	Name   string `json:"nom"`
	Active bool   `json:"actif"`
	Order  int    `json:"ordre"`
}

// Expense is a recorded charge, optionally linked to an order and a receipt.
type Expense struct {
	ID             int64              `json:"id"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
	Date           string             `json:"date_charge"`
	Category       int64              `json:"categorie"`
	CategoryName   string             `json:"categorie_nom,omitempty"`
	Label          string             `json:"libelle"`
	Description    string             `json:"description,omitempty"`
	Total          Amount             `json:"montant"`
	Status         ExpenseStatus      `json:"statut"`
	PaymentMode    ExpensePaymentMode `json:"mode_paiement"`
	Order          *int64             `json:"commande,omitempty"`
	ReceiptURL     *string            `json:"piece_url,omitempty"`
	CreatedByLabel *string            `json:"created_by_label,omitempty"`
}

// ExpensePayload creates or patches an expense; it is sent as multipart form
// data because of the optional receipt upload. Nil pointers are omitted.
type ExpensePayload struct {
	Date        *string
	Category    *int64
	Label       *string
	Description *string
	Total       *Amount
	Status      *ExpenseStatus
	PaymentMode *ExpensePaymentMode
	Order       *int64
	Receipt     *gateway.FilePart
}

func (p ExpensePayload) form() *gateway.Form {
	form := &gateway.Form{}
	if p.Date != nil {
		form.Add("date_charge", *p.Date)
	}
	if p.Category != nil {
		form.Add("categorie", strconv.FormatInt(*p.Category, 10))
	}
	if p.Label != nil {
		form.Add("libelle", *p.Label)
	}
	if p.Description != nil {
		form.Add("description", *p.Description)
	}
	if p.Total != nil {
		form.Add("montant", string(*p.Total))
	}
	if p.Status != nil {
		form.Add("statut", string(*p.Status))
	}
	if p.PaymentMode != nil {
		form.Add("mode_paiement", string(*p.PaymentMode))
	}
	if p.Order != nil {
		form.Add("commande", strconv.FormatInt(*p.Order, 10))
	}
	if p.Receipt != nil {
		form.AddFile("piece", p.Receipt.Filename, p.Receipt.Content)
	}
	return form
}

type ExpensesService struct {
	gw *gateway.Gateway
}

func NewExpenses(gw *gateway.Gateway) *ExpensesService {
	return &ExpensesService{gw: gw}
}

func (s *ExpensesService) ListCategories(ctx context.Context, params url.Values) ([]ExpenseCategory, error) {
	res, err := s.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "charge/categories/", Query: params})
	if err != nil {
		return nil, err
	}
	return unwrapList[ExpenseCategory](res.Body)
}

func (s *ExpensesService) CreateCategory(ctx context.Context, name string, order int) (*ExpenseCategory, error) {
	var c ExpenseCategory
	body := map[string]any{"nom": name, "ordre": order}
	if err := s.gw.Post(ctx, "charge/categories/", body, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ExpensesService) List(ctx context.Context, params url.Values) ([]Expense, error) {
	res, err := s.gw.Do(ctx, gateway.Request{Method: http.MethodGet, Path: "charge/charges/", Query: params})
	if err != nil {
		return nil, err
	}
	return unwrapList[Expense](res.Body)
}

func (s *ExpensesService) Get(ctx context.Context, id int64) (*Expense, error) {
	var e Expense
	if err := s.gw.Get(ctx, fmt.Sprintf("charge/charges/%d/", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpensesService) Create(ctx context.Context, payload ExpensePayload) (*Expense, error) {
	var e Expense
	if err := s.gw.PostForm(ctx, "charge/charges/", payload.form(), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpensesService) Update(ctx context.Context, id int64, payload ExpensePayload) (*Expense, error) {
	var e Expense
	if err := s.gw.PatchForm(ctx, fmt.Sprintf("charge/charges/%d/", id), payload.form(), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpensesService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("charge/charges/%d/", id))
}

// Stats returns aggregate expense figures; the shape varies with params.
func (s *ExpensesService) Stats(ctx context.Context, params url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.gw.Get(ctx, "charge/charges/stats/", params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
