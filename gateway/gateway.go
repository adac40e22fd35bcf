// Package gateway is the single chokepoint for all backend calls. It stamps
// the stored access token onto outgoing requests and, on an authorization
// failure, renews the credential pair at most once per request, coalescing
// concurrent renewals into a single backend call.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/MbolafyDev/go-backoffice/tokens"
)

const defaultRefreshPath = "auth/refresh/"

// Gateway sends authenticated requests to the back-office backend.
type Gateway struct {
	baseURL     string
	refreshPath string
	timeout     time.Duration

	// client carries ordinary traffic; rawClient is the non-intercepted
	// channel used only for the renewal call, so a 401 on renewal itself
	// cannot recurse into another renewal.
	client    *http.Client
	rawClient *http.Client

	tokens  tokens.Repo
	renewer *renewer
	log     zerolog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout bounds every request, the renewal call included.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithLogger sets the gateway logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

// WithRefreshPath overrides the token renewal endpoint path.
func WithRefreshPath(path string) Option {
	return func(g *Gateway) {
		g.refreshPath = path
	}
}

// WithTransport replaces the underlying HTTP transport (for tests).
func WithTransport(rt http.RoundTripper) Option {
	return func(g *Gateway) {
		g.client.Transport = rt
		g.rawClient.Transport = rt
	}
}

// New creates a Gateway for the backend at baseURL, reading and writing the
// credential pair through tokenRepo.
func New(baseURL string, tokenRepo tokens.Repo, options ...Option) (*Gateway, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[gateway.New] baseURL is required")
	}
	if tokenRepo == nil {
		return nil, errors.New("[gateway.New] token repo is required")
	}

	g := &Gateway{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		refreshPath: defaultRefreshPath,
		timeout:     8 * time.Second,
		client:      &http.Client{},
		rawClient:   &http.Client{},
		tokens:      tokenRepo,
		renewer:     newRenewer(),
		log:         zerolog.Nop(),
	}

	for _, opt := range options {
		opt(g)
	}

	g.client.Timeout = g.timeout
	g.rawClient.Timeout = g.timeout
	return g, nil
}

// Do sends req, renewing the access token and replaying once if the backend
// answers 401. Any other failure propagates unchanged.
func (g *Gateway) Do(ctx context.Context, req Request) (*Response, error) {
	res, err := g.dispatch(ctx, req, g.tokens.Access())
	if err == nil || !IsUnauthorized(err) {
		return res, err
	}
	originalErr := err

	refresh := g.tokens.Refresh()
	if refresh == "" {
		// Nothing to renew with: the session cannot be recovered.
		g.log.Warn().Msg("401 with no refresh token, clearing credentials")
		if clearErr := g.tokens.Clear(); clearErr != nil {
			g.log.Error().Err(clearErr).Msg("failed to clear credentials")
		}
		return nil, originalErr
	}

	ch, started := g.renewer.join()
	if started {
		g.log.Warn().Msg("401 received, renewing access token")
		g.renewer.settle(g.renew(refresh))
	}
	outcome := <-ch

	if outcome.token == "" {
		if !started {
			// Queued requests reject with their own original failure.
			return nil, originalErr
		}
		if errors.Is(outcome.err, errEmptyRenewalPayload) {
			return nil, originalErr
		}
		return nil, outcome.err
	}

	// Replay exactly once; a second 401 propagates as a final failure.
	return g.dispatch(ctx, req, outcome.token)
}

// renew exchanges the refresh token for a new access token on the
// non-intercepted channel and persists the outcome. It runs on a background
// context: an in-flight renewal is shared state and cannot be cancelled by
// any single caller.
func (g *Gateway) renew(refresh string) renewResult {
	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return renewResult{err: errors.Wrap(err, "[Gateway.renew] marshal body")}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(g.refreshPath, nil), bytes.NewReader(body))
	if err != nil {
		return renewResult{err: errors.Wrap(err, "[Gateway.renew] build request")}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.rawClient.Do(httpReq)
	if err != nil {
		// Transient outage: keep the stored credentials so a later request
		// can retry renewal from the same refresh token.
		g.log.Warn().Err(err).Msg("renewal failed on network, keeping credentials")
		return renewResult{err: &NetworkError{Err: err}}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Warn().Err(err).Msg("renewal response unreadable, keeping credentials")
		return renewResult{err: &NetworkError{Err: err}}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The backend answered and said no: the refresh token is dead.
		g.log.Error().Int("status", resp.StatusCode).Msg("renewal rejected, clearing credentials")
		if clearErr := g.tokens.Clear(); clearErr != nil {
			g.log.Error().Err(clearErr).Msg("failed to clear credentials")
		}
		return renewResult{err: &HTTPError{StatusCode: resp.StatusCode, Body: respBody}}
	}

	var payload struct {
		Access       string `json:"access"`
		AccessToken  string `json:"access_token"`
		Refresh      string `json:"refresh"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		g.log.Error().Err(err).Msg("renewal payload undecodable, clearing credentials")
		if clearErr := g.tokens.Clear(); clearErr != nil {
			g.log.Error().Err(clearErr).Msg("failed to clear credentials")
		}
		return renewResult{err: errEmptyRenewalPayload}
	}

	newAccess := payload.Access
	if newAccess == "" {
		newAccess = payload.AccessToken
	}
	newRefresh := payload.Refresh
	if newRefresh == "" {
		newRefresh = payload.RefreshToken
	}

	if newAccess == "" {
		g.log.Error().Msg("renewal succeeded but carried no access token, clearing credentials")
		if clearErr := g.tokens.Clear(); clearErr != nil {
			g.log.Error().Err(clearErr).Msg("failed to clear credentials")
		}
		return renewResult{err: errEmptyRenewalPayload}
	}

	if newRefresh != "" {
		err = g.tokens.SetPair(newAccess, newRefresh)
	} else {
		// Backend did not rotate the refresh token; the stored one stays valid.
		err = g.tokens.SetAccess(newAccess)
	}
	if err != nil {
		return renewResult{err: errors.Wrap(err, "[Gateway.renew] persist tokens")}
	}

	g.log.Info().Bool("rotated_refresh", newRefresh != "").Msg("access token renewed")
	return renewResult{token: newAccess}
}

// dispatch performs a single HTTP exchange with no renewal logic.
func (g *Gateway) dispatch(ctx context.Context, req Request, accessToken string) (*Response, error) {
	var (
		bodyReader  io.Reader
		contentType string
	)
	switch {
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "[Gateway.dispatch] marshal body")
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	case req.Form != nil:
		data, ct, err := req.Form.encode()
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(data)
		contentType = ct
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, g.url(req.Path, req.Query), bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "[Gateway.dispatch] build request")
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

func (g *Gateway) url(path string, query url.Values) string {
	full := g.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}
