package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// InvoiceType distinguishes proforma documents from final invoices.
type InvoiceType string

const (
	InvoiceProforma InvoiceType = "PROFORMA"
	InvoiceFinal    InvoiceType = "FACTURE"
)

// InvoiceRow is one line of the invoicing screen, based on an order.
type InvoiceRow struct {
	ID            int64       `json:"id"`
	InvoiceID     *int64      `json:"facture_id"`
	Type          InvoiceType `json:"type_facture"`
	DisplayNumber string      `json:"numero_affiche"`
	IsPaid        bool        `json:"is_paid"`
	LogoURL       *string     `json:"logo_url"`

	PaymentStatus    PaymentStatus `json:"paiement_statut"`
	PaymentMode      string        `json:"paiement_mode"`
	PaymentReference string        `json:"paiement_reference"`
	CollectedAt      *string       `json:"encaisse_le"`

	OrderDetail json.RawMessage `json:"commande_detail"`
}

type InvoicesService struct {
	gw *gateway.Gateway
}

func NewInvoices(gw *gateway.Gateway) *InvoicesService {
	return &InvoicesService{gw: gw}
}

func (s *InvoicesService) List(ctx context.Context, params url.Values) (*Paginated[InvoiceRow], error) {
	var page Paginated[InvoiceRow]
	if err := s.gw.Get(ctx, "facturation/commandes/", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PDF fetches one order's invoice PDF. With download set, the backend adds
// attachment headers; the bytes are the same either way.
func (s *InvoicesService) PDF(ctx context.Context, orderID int64, download bool) ([]byte, error) {
	query := url.Values{}
	if download {
		query.Set("download", "1")
	}
	return s.gw.GetBinary(ctx, fmt.Sprintf("facturation/commandes/%d/pdf/", orderID), query)
}

// BulkPDF renders one multi-page PDF for the selected orders.
func (s *InvoicesService) BulkPDF(ctx context.Context, orderIDs []int64, download bool) ([]byte, error) {
	query := url.Values{}
	if download {
		query.Set("download", "1")
	}
	res, err := s.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "facturation/commandes/bulk-pdf/",
		Query:  query,
		Body:   map[string][]int64{"commande_ids": orderIDs},
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// BulkDownload returns a ZIP of the selected orders' invoices.
func (s *InvoicesService) BulkDownload(ctx context.Context, orderIDs []int64) ([]byte, error) {
	res, err := s.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "facturation/commandes/bulk-download/",
		Body:   map[string][]int64{"commande_ids": orderIDs},
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// DownloadAll returns a ZIP of every invoice matching params.
func (s *InvoicesService) DownloadAll(ctx context.Context, params url.Values) ([]byte, error) {
	return s.gw.GetBinary(ctx, "facturation/commandes/download-all/", params)
}

// SaveFile writes fetched document bytes to path, creating directories as
// needed. Stands in for the browser-side blob download.
func SaveFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "[SaveFile] mkdir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "[SaveFile] write")
	}
	return nil
}
