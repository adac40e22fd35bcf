package session

import (
	"context"

	"github.com/MbolafyDev/go-backoffice/gateway"
	"github.com/MbolafyDev/go-backoffice/users"
)

// ProfileUpdate carries the profile fields to change. Nil pointers are
// omitted from the payload entirely, so unset fields stay untouched on the
// backend.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Address     *string
	PhoneNumber *string
	Sex         *users.Sex

	ProfilePhoto *gateway.FilePart
	CoverPhoto   *gateway.FilePart
}

func (p ProfileUpdate) form() *gateway.Form {
	form := &gateway.Form{}
	if p.FirstName != nil {
		form.Add("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		form.Add("last_name", *p.LastName)
	}
	if p.Address != nil {
		form.Add("adresse", *p.Address)
	}
	if p.PhoneNumber != nil {
		form.Add("numero_telephone", *p.PhoneNumber)
	}
	if p.Sex != nil {
		form.Add("sexe", string(*p.Sex))
	}
	if p.ProfilePhoto != nil {
		form.AddFile("photo_profil", p.ProfilePhoto.Filename, p.ProfilePhoto.Content)
	}
	if p.CoverPhoto != nil {
		form.AddFile("photo_couverture", p.CoverPhoto.Filename, p.CoverPhoto.Content)
	}
	return form
}

// UpdateProfile sends the provided fields as multipart form data and replaces
// the session user with the returned profile.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	s.setLoading(true)
	s.setLastError("")
	defer s.setLoading(false)

	var res struct {
		Message string      `json:"message"`
		User    *users.User `json:"user"`
	}
	if err := s.gw.PatchForm(ctx, profilePath, update.form(), &res); err != nil {
		s.setLastError(gateway.Message(err, profileFallbackMessage))
		return err
	}
	if res.User != nil {
		s.setUser(res.User)
	}
	return nil
}

// Registration is the payload for creating a new account.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Register creates a new account. It does not log the new user in.
func (s *Store) Register(ctx context.Context, reg Registration) error {
	s.setLastError("")
	return s.gw.Post(ctx, registerPath, reg, nil)
}

// ForgotPassword asks the backend to start a password reset for email.
func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	s.setLastError("")
	return s.gw.Post(ctx, forgotPasswordPath, map[string]string{"email": email}, nil)
}

// ResetPassword completes a password reset using the emailed uid and token.
func (s *Store) ResetPassword(ctx context.Context, uid, token, newPassword string) error {
	s.setLastError("")
	body := map[string]string{"uid": uid, "token": token, "new_password": newPassword}
	return s.gw.Post(ctx, resetPasswordPath, body, nil)
}
