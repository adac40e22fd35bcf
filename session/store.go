// Package session owns the in-memory representation of the authenticated user
// and the operations that create or destroy a session. All backend I/O goes
// through the gateway; the renewal protocol itself lives there.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/MbolafyDev/go-backoffice/gateway"
	"github.com/MbolafyDev/go-backoffice/tokens"
	"github.com/MbolafyDev/go-backoffice/users"
)

// Auth endpoint paths, relative to the gateway base URL.
const (
	loginPath          = "auth/login/"
	logoutPath         = "auth/logout/"
	mePath             = "auth/me/"
	registerPath       = "auth/register/"
	forgotPasswordPath = "auth/forgot-password/"
	resetPasswordPath  = "auth/reset-password/"
	profilePath        = "auth/profile/"
)

// User-facing fallback messages, matching the backend's language.
const (
	loginFallbackMessage   = "Identifiants invalides ou erreur réseau."
	profileFallbackMessage = "Erreur lors de la mise à jour du profil."
)

// Store holds the session state. The zero user means unauthenticated; views
// never mutate the state directly.
type Store struct {
	gw     *gateway.Gateway
	tokens tokens.Repo
	log    zerolog.Logger

	mu        sync.RWMutex
	user      *users.User
	loading   bool
	lastError string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the store logger.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a session store on top of gw and the shared credential
// repo.
func NewStore(gw *gateway.Gateway, tokenRepo tokens.Repo, options ...StoreOption) (*Store, error) {
	if gw == nil {
		return nil, errors.New("[session.NewStore] gateway is required")
	}
	if tokenRepo == nil {
		return nil, errors.New("[session.NewStore] token repo is required")
	}
	s := &Store{
		gw:     gw,
		tokens: tokenRepo,
		log:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// User returns the authenticated user, or nil.
func (s *Store) User() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// Role returns the authenticated user's role, or "" when anonymous.
func (s *Store) Role() users.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// FullName returns the authenticated user's display name, or "".
func (s *Store) FullName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.FullName()
}

// Loading reports whether a login/logout/profile operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the human-readable message of the last failed operation.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// RestoreFromStorage rebuilds the session from persisted credentials at
// startup. With no stored tokens the user stays nil and no backend call is
// made. A network failure leaves both credentials and user untouched (the
// session is "unknown", not ended); any other failure ends the session.
func (s *Store) RestoreFromStorage(ctx context.Context) {
	if s.tokens.Access() == "" && s.tokens.Refresh() == "" {
		s.setUser(nil)
		return
	}

	if err := s.FetchCurrentUser(ctx); err != nil {
		if gateway.IsNetwork(err) {
			s.log.Warn().Err(err).Msg("session restore hit a network failure, keeping credentials")
			return
		}
		s.log.Warn().Err(err).Msg("session restore rejected, ending session")
		s.logoutLocalOnly()
	}
}

type loginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    *users.User `json:"user,omitempty"`
}

// Login authenticates with the backend and persists the returned credential
// pair. When the login response omits the profile, it is fetched separately.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)
	s.setLastError("")
	defer s.setLoading(false)

	var res loginResponse
	err := s.gw.Post(ctx, loginPath, map[string]string{"email": email, "password": password}, &res)
	if err != nil {
		s.setLastError(gateway.Message(err, loginFallbackMessage))
		return err
	}

	if err := s.tokens.SetPair(res.Access, res.Refresh); err != nil {
		return errors.Wrap(err, "[Store.Login] persist tokens")
	}

	if res.User != nil {
		s.setUser(res.User)
		return nil
	}
	return s.FetchCurrentUser(ctx)
}

// FetchCurrentUser asks the backend who the stored credentials belong to.
func (s *Store) FetchCurrentUser(ctx context.Context) error {
	var u users.User
	if err := s.gw.Get(ctx, mePath, nil, &u); err != nil {
		return err
	}
	s.setUser(&u)
	return nil
}

// Logout tells the backend to drop the refresh token, then unconditionally
// ends the session locally. A backend failure is logged and ignored: logout is
// always locally effective.
func (s *Store) Logout(ctx context.Context) {
	s.setLoading(true)
	s.setLastError("")

	if refresh := s.tokens.Refresh(); refresh != "" {
		if err := s.gw.Post(ctx, logoutPath, map[string]string{"refresh": refresh}, nil); err != nil {
			s.log.Warn().Err(err).Msg("logout backend call failed, ignoring")
		}
	}
	s.logoutLocalOnly()
}

// logoutLocalOnly clears the durable credentials and resets the session state.
func (s *Store) logoutLocalOnly() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear credentials")
	}
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Store) setUser(u *users.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) setLastError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}
