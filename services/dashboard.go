package services

import (
	"context"
	"net/url"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// DateRange bounds every dashboard aggregate.
type DateRange struct {
	From string `json:"date_from"`
	To   string `json:"date_to"`
}

// Overview is the main KPI block.
type Overview struct {
	Range DateRange `json:"range"`

	OrderCount     int `json:"nb_commandes"`
	DeliveredCount int `json:"nb_livrees"`
	CancelledCount int `json:"nb_annulees"`

	RevenueOrdered   float64 `json:"ca_total_commandes"`
	RevenueCollected float64 `json:"ca_total_encaisse"`

	AverageBasket          float64 `json:"panier_moyen"`
	AverageBasketCollected float64 `json:"panier_moyen_encaisse"`

	ExpensesTotal   float64 `json:"charges_total"`
	PurchasesTotal  float64 `json:"achats_total"`
	SpendingTotal   float64 `json:"depenses_total"`
	EstimatedCOGS   float64 `json:"cogs_estime"`
	EstimatedProfit float64 `json:"benefice_estime"`
}

type SeriesPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type Series struct {
	Range  DateRange     `json:"range"`
	Label  string        `json:"label"`
	Points []SeriesPoint `json:"points"`
}

type StatusCount struct {
	Status string `json:"statut"`
	Count  int    `json:"nb"`
}

type StatusBreakdown struct {
	Range DateRange     `json:"range"`
	Items []StatusCount `json:"items"`
}

type TopArticle struct {
	ArticleID   int64   `json:"article_id"`
	Reference   string  `json:"reference"`
	ProductName string  `json:"nom_produit"`
	Quantity    int     `json:"quantite"`
	Revenue     float64 `json:"ca"`
}

type TopArticles struct {
	Range DateRange    `json:"range"`
	Items []TopArticle `json:"items"`
}

type PaymentMixItem struct {
	Mode    string  `json:"mode"`
	Count   int     `json:"nb"`
	Revenue float64 `json:"ca"`
}

type PaymentMix struct {
	Range DateRange        `json:"range"`
	Items []PaymentMixItem `json:"items"`
}

type PageSalesItem struct {
	PageID   *int64  `json:"page_id"`
	PageName *string `json:"page_nom"`
	Count    int     `json:"nb"`
	Revenue  float64 `json:"ca"`
}

type PageSales struct {
	Range DateRange       `json:"range"`
	Items []PageSalesItem `json:"items"`
}

// OutgoingArticle is a sold article with estimated margin.
type OutgoingArticle struct {
	ArticleID   int64  `json:"article_id"`
	Reference   string `json:"reference"`
	ProductName string `json:"nom_produit"`

	Quantity         int     `json:"quantite"`
	AverageSalePrice float64 `json:"prix_moyen_vente"`
	TotalSales       float64 `json:"total_vente"`

	EstimatedUnitCost  float64 `json:"cout_unit_estime"`
	EstimatedTotalCost float64 `json:"cout_total_estime"`
	EstimatedMargin    float64 `json:"marge_estime"`
}

// IncomingArticle is a purchased article over the period.
type IncomingArticle struct {
	ArticleID   int64  `json:"article_id"`
	Reference   string `json:"reference"`
	ProductName string `json:"nom_produit"`

	Quantity         int     `json:"quantite"`
	AverageBuyPrice  float64 `json:"prix_moyen_achat"`
	AverageSalePrice float64 `json:"prix_moyen_vente"`
	TotalPurchases   float64 `json:"total_achat"`
}

type OutgoingArticles struct {
	Range DateRange         `json:"range"`
	Items []OutgoingArticle `json:"items"`
}

type IncomingArticles struct {
	Range DateRange         `json:"range"`
	Items []IncomingArticle `json:"items"`
}

// DashboardService reads the reporting aggregates.
type DashboardService struct {
	gw *gateway.Gateway
}

func NewDashboard(gw *gateway.Gateway) *DashboardService {
	return &DashboardService{gw: gw}
}

func (s *DashboardService) Overview(ctx context.Context, params url.Values) (*Overview, error) {
	var o Overview
	if err := s.gw.Get(ctx, "dashboard/overview/", params, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *DashboardService) RevenueByDay(ctx context.Context, params url.Values) (*Series, error) {
	var r Series
	if err := s.gw.Get(ctx, "dashboard/ca-by-day/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DashboardService) OrdersByStatus(ctx context.Context, params url.Values) (*StatusBreakdown, error) {
	var r StatusBreakdown
	if err := s.gw.Get(ctx, "dashboard/commandes-by-statut/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DashboardService) TopArticles(ctx context.Context, params url.Values) (*TopArticles, error) {
	var r TopArticles
	if err := s.gw.Get(ctx, "dashboard/top-articles/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DashboardService) PaymentMix(ctx context.Context, params url.Values) (*PaymentMix, error) {
	var r PaymentMix
	if err := s.gw.Get(ctx, "dashboard/payment-mix/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DashboardService) SalesByPage(ctx context.Context, params url.Values) (*PageSales, error) {
	var r PageSales
	if err := s.gw.Get(ctx, "dashboard/sales-by-page/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DashboardService) OutgoingArticles(ctx context.Context, params url.Values) (*OutgoingArticles, error) {
	var r OutgoingArticles
	if err := s.gw.Get(ctx, "dashboard/articles-sortants/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DashboardService) IncomingArticles(ctx context.Context, params url.Values) (*IncomingArticles, error) {
	var r IncomingArticles
	if err := s.gw.Get(ctx, "dashboard/articles-entrants/", params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
