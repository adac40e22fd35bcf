package tokens

// Fixed storage keys for the credential pair.
const (
	AccessKey  = "access_token"
	RefreshKey = "refresh_token"
)

// Repo manages the durable credential pair: a short-lived access token and the
// refresh token used to renew it. It is the only persisted state of the client.
//
// Reads never fail: a missing or unreadable store reads as empty strings, which
// callers treat as "not logged in". Writes report storage errors.
type Repo interface {
	// Access returns the stored access token, or "" when absent.
	Access() string
	// Refresh returns the stored refresh token, or "" when absent.
	Refresh() string
	// SetPair stores both tokens as a unit (login, renewal with rotation).
	SetPair(access, refresh string) error
	// SetAccess replaces only the access token, keeping the stored refresh
	// token (renewal without rotation).
	SetAccess(access string) error
	// Clear removes both tokens (logout, terminal renewal failure).
	Clear() error
}
