package users

import "strings"

// Role is a back-office user role. The set is closed; the backend rejects
// anything else.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleCommerciale      Role = "COMMERCIALE"
	RoleCommunityManager Role = "COMMUNITY_MANAGER"
)

// Sex mirrors the backend's profile field values.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
	SexOther  Sex = "AUTRE"
)

// User is the authenticated user's profile as returned by the backend.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	Role Role `json:"role,omitempty"`

	ProfilePhotoURL string `json:"photo_profil_url,omitempty"`
	CoverPhotoURL   string `json:"photo_couverture_url,omitempty"`
	Address         string `json:"adresse,omitempty"`
	PhoneNumber     string `json:"numero_telephone,omitempty"`
	Sex             Sex    `json:"sexe,omitempty"`
}

// FullName joins first and last name, trimming when either is empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsCommerciale() bool {
	return u != nil && u.Role == RoleCommerciale
}

func (u *User) IsCommunityManager() bool {
	return u != nil && u.Role == RoleCommunityManager
}
