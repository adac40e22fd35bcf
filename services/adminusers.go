package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MbolafyDev/go-backoffice/gateway"
	"github.com/MbolafyDev/go-backoffice/users"
)

// AccountItem is a user account as seen by the admin screens.
type AccountItem struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Role            users.Role `json:"role"`
	IsActive        bool       `json:"is_active"`
	IsStaff         bool       `json:"is_staff"`
	IsSuperuser     bool       `json:"is_superuser"`
	DateJoined      string     `json:"date_joined,omitempty"`
	LastLogin       *string    `json:"last_login,omitempty"`
	ProfilePhotoURL *string    `json:"photo_profil_url,omitempty"`
}

// AccountPatch updates only the non-nil fields.
type AccountPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// ListAccountsParams filters the account list. The backend takes DRF-standard
// parameter names (search, is_active); this struct maps to them.
type ListAccountsParams struct {
	Query    string
	Role     users.Role
	Active   *bool
	Page     int
	PageSize int
}

func (p ListAccountsParams) values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("search", p.Query)
	}
	if p.Role != "" {
		v.Set("role", string(p.Role))
	}
	if p.Active != nil {
		v.Set("is_active", strconv.FormatBool(*p.Active))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return v
}

// AdminUsersService manages user accounts (admin only).
type AdminUsersService struct {
	gw *gateway.Gateway
}

func NewAdminUsers(gw *gateway.Gateway) *AdminUsersService {
	return &AdminUsersService{gw: gw}
}

func (s *AdminUsersService) List(ctx context.Context, params ListAccountsParams) (*Paginated[AccountItem], error) {
	var page Paginated[AccountItem]
	if err := s.gw.Get(ctx, "configuration/users/", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *AdminUsersService) Get(ctx context.Context, id int64) (*AccountItem, error) {
	var a AccountItem
	if err := s.gw.Get(ctx, fmt.Sprintf("configuration/users/%d/", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminUsersService) Patch(ctx context.Context, id int64, patch AccountPatch) (*AccountItem, error) {
	var a AccountItem
	if err := s.gw.Patch(ctx, fmt.Sprintf("configuration/users/%d/", id), patch, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminUsersService) SetRole(ctx context.Context, id int64, role users.Role) (*AccountItem, error) {
	var a AccountItem
	body := map[string]string{"role": string(role)}
	if err := s.gw.Patch(ctx, fmt.Sprintf("configuration/users/%d/set-role/", id), body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminUsersService) SetStatus(ctx context.Context, id int64, active bool) (*AccountItem, error) {
	var a AccountItem
	body := map[string]bool{"is_active": active}
	if err := s.gw.Patch(ctx, fmt.Sprintf("configuration/users/%d/set-status/", id), body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
