package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MbolafyDev/go-backoffice/gateway"
)

// AppConfiguration is the single global configuration record.
type AppConfiguration struct {
	ID                 int64  `json:"id"`
	AppName            string `json:"app_name"`
	MaintenanceMode    bool   `json:"maintenance_mode"`
	MaintenanceMessage string `json:"maintenance_message"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// AppConfigurationPatch updates only the non-nil fields.
type AppConfigurationPatch struct {
	AppName            *string `json:"app_name,omitempty"`
	MaintenanceMode    *bool   `json:"maintenance_mode,omitempty"`
	MaintenanceMessage *string `json:"maintenance_message,omitempty"`
}

// PageConfig is a sales page (storefront) configuration.
type PageConfig struct {
	ID        int64   `json:"id"`
	Config    int64   `json:"config"`
	Name      string  `json:"nom"`
	Link      string  `json:"lien"`
	LogoURL   *string `json:"logo_url"`
	Order     int     `json:"ordre"`
	Active    bool    `json:"actif"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// PagePayload carries page fields as multipart form data; the logo upload is
// optional and nil pointers are omitted.
type PagePayload struct {
	Name   *string
	Link   *string
	Order  *int
	Active *bool
	Logo   *gateway.FilePart
}

func (p PagePayload) form() *gateway.Form {
	form := &gateway.Form{}
	if p.Name != nil {
		form.Add("nom", *p.Name)
	}
	if p.Link != nil {
		form.Add("lien", *p.Link)
	}
	if p.Order != nil {
		form.Add("ordre", strconv.Itoa(*p.Order))
	}
	if p.Active != nil {
		form.Add("actif", strconv.FormatBool(*p.Active))
	}
	if p.Logo != nil {
		form.AddFile("logo", p.Logo.Filename, p.Logo.Content)
	}
	return form
}

// AppConfigService manages the global app configuration and its sales pages.
type AppConfigService struct {
	gw *gateway.Gateway
}

func NewAppConfig(gw *gateway.Gateway) *AppConfigService {
	return &AppConfigService{gw: gw}
}

// GetSolo fetches the single configuration record.
func (s *AppConfigService) GetSolo(ctx context.Context) (*AppConfiguration, error) {
	var c AppConfiguration
	if err := s.gw.Get(ctx, "configuration/app/solo/", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *AppConfigService) PatchSolo(ctx context.Context, patch AppConfigurationPatch) (*AppConfiguration, error) {
	var c AppConfiguration
	if err := s.gw.Patch(ctx, "configuration/app/solo/", patch, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *AppConfigService) ListPages(ctx context.Context, params url.Values) (*Paginated[PageConfig], error) {
	var page Paginated[PageConfig]
	if err := s.gw.Get(ctx, "configuration/pages/", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *AppConfigService) GetPage(ctx context.Context, id int64) (*PageConfig, error) {
	var p PageConfig
	if err := s.gw.Get(ctx, fmt.Sprintf("configuration/pages/%d/", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AppConfigService) CreatePage(ctx context.Context, payload PagePayload) (*PageConfig, error) {
	var p PageConfig
	if err := s.gw.PostForm(ctx, "configuration/pages/", payload.form(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AppConfigService) UpdatePage(ctx context.Context, id int64, payload PagePayload) (*PageConfig, error) {
	var p PageConfig
	if err := s.gw.PatchForm(ctx, fmt.Sprintf("configuration/pages/%d/", id), payload.form(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AppConfigService) DeletePage(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("configuration/pages/%d/", id))
}
