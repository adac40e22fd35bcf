package services

import (
	"context"
	"fmt"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// Article is a stock item.
type Article struct {
	ID            int64  `json:"id"`
	ProductName   string `json:"nom_produit"`
	Reference     string `json:"reference"`
	PurchasePrice Amount `json:"prix_achat"`
	SalePrice     Amount `json:"prix_vente"`
	StockQuantity int    `json:"quantite_stock,omitempty"`
	Description   string `json:"description"`
	PhotoURL      string `json:"photo_url,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// ArticlePayload carries the article fields sent as multipart form data; the
// photo is optional.
type ArticlePayload struct {
	ProductName   string
	Reference     string
	PurchasePrice Amount
	SalePrice     Amount
	Description   string
	Photo         *gateway.FilePart
}

func (p ArticlePayload) form() *gateway.Form {
	form := &gateway.Form{}
	form.Add("nom_produit", p.ProductName)
	form.Add("reference", p.Reference)
	form.Add("prix_achat", string(p.PurchasePrice))
	form.Add("prix_vente", string(p.SalePrice))
	form.Add("description", p.Description)
	if p.Photo != nil {
		form.AddFile("photo", p.Photo.Filename, p.Photo.Content)
	}
	return form
}

type ArticlesService struct {
	gw *gateway.Gateway
}

func NewArticles(gw *gateway.Gateway) *ArticlesService {
	return &ArticlesService{gw: gw}
}

func (s *ArticlesService) List(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := s.gw.Get(ctx, "articles/", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticlesService) Retrieve(ctx context.Context, id int64) (*Article, error) {
	var a Article
	if err := s.gw.Get(ctx, fmt.Sprintf("articles/%d/", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ArticlesService) Create(ctx context.Context, payload ArticlePayload) (*Article, error) {
	var a Article
	if err := s.gw.PostForm(ctx, "articles/", payload.form(), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ArticlesService) Update(ctx context.Context, id int64, payload ArticlePayload) (*Article, error) {
	var a Article
	if err := s.gw.PutForm(ctx, fmt.Sprintf("articles/%d/", id), payload.form(), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ArticlesService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("articles/%d/", id))
}
