package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MbolafyDev/go-backoffice/gateway"
	"github.com/MbolafyDev/go-backoffice/tokens/repofake"
)

const (
	oldAccess  = "old-access"
	newAccess  = "new-access"
	oldRefresh = "old-refresh"
	newRefresh = "new-refresh"
)

// testBackend is a scripted backend: /data/ answers 200 only for the renewed
// access token, /auth/refresh/ behaves per the configured mode.
type testBackend struct {
	t *testing.T

	renewCalls   atomic.Int64
	dataCalls    atomic.Int64
	renewDelay   time.Duration
	renewStatus  int               // 0 means success
	renewPayload map[string]string // response body on success
	acceptToken  string            // bearer value /data/ accepts

	server *httptest.Server
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{
		t:            t,
		acceptToken:  newAccess,
		renewPayload: map[string]string{"access": newAccess, "refresh": newRefresh},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh/", b.handleRenew)
	mux.HandleFunc("/data/", b.handleData)
	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) handleRenew(w http.ResponseWriter, r *http.Request) {
	b.renewCalls.Add(1)
	if b.renewDelay > 0 {
		time.Sleep(b.renewDelay)
	}
	var body map[string]string
	require.NoError(b.t, json.NewDecoder(r.Body).Decode(&body))
	require.Equal(b.t, oldRefresh, body["refresh"])

	if b.renewStatus != 0 {
		w.WriteHeader(b.renewStatus)
		_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b.renewPayload)
}

func (b *testBackend) handleData(w http.ResponseWriter, r *http.Request) {
	b.dataCalls.Add(1)
	if r.Header.Get("Authorization") != "Bearer "+b.acceptToken {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Given token not valid"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func setupGateway(t *testing.T, b *testBackend, opts ...gateway.Option) (*gateway.Gateway, *repofake.FakeTokenRepo) {
	t.Helper()
	repo := repofake.NewFakeTokenRepo()
	require.NoError(t, repo.SetPair(oldAccess, oldRefresh))
	gw, err := gateway.New(b.server.URL, repo, opts...)
	require.NoError(t, err)
	return gw, repo
}

func getData(gw *gateway.Gateway) (*gateway.Response, error) {
	return gw.Do(context.Background(), gateway.Request{Method: http.MethodGet, Path: "data/"})
}

func TestExpiredTokenRenewedAndReplayedTransparently(t *testing.T) {
	b := newTestBackend(t)
	gw, repo := setupGateway(t, b)

	res, err := getData(gw)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(res.Body))

	require.EqualValues(t, 1, b.renewCalls.Load())
	require.EqualValues(t, 2, b.dataCalls.Load()) // original + replay
	require.Equal(t, newAccess, repo.Access())
	require.Equal(t, newRefresh, repo.Refresh())
}

func TestRenewalWithoutRotationKeepsStoredRefreshToken(t *testing.T) {
	b := newTestBackend(t)
	b.renewPayload = map[string]string{"access": newAccess}
	gw, repo := setupGateway(t, b)

	_, err := getData(gw)
	require.NoError(t, err)
	require.Equal(t, newAccess, repo.Access())
	require.Equal(t, oldRefresh, repo.Refresh())
}

func TestRenewalAcceptsAlternatePayloadKeys(t *testing.T) {
	b := newTestBackend(t)
	b.renewPayload = map[string]string{"access_token": newAccess, "refresh_token": newRefresh}
	gw, repo := setupGateway(t, b)

	_, err := getData(gw)
	require.NoError(t, err)
	require.Equal(t, newAccess, repo.Access())
	require.Equal(t, newRefresh, repo.Refresh())
}

func TestSecond401AfterReplayIsTerminal(t *testing.T) {
	b := newTestBackend(t)
	b.acceptToken = "something-else-entirely" // replay still rejected
	gw, _ := setupGateway(t, b)

	_, err := getData(gw)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))
	require.EqualValues(t, 1, b.renewCalls.Load())
	require.EqualValues(t, 2, b.dataCalls.Load())
}

func TestMissing401RefreshTokenClearsCredentials(t *testing.T) {
	b := newTestBackend(t)
	gw, repo := setupGateway(t, b)
	require.NoError(t, repo.SetPair(oldAccess, ""))

	_, err := getData(gw)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))
	require.EqualValues(t, 0, b.renewCalls.Load())
	require.Empty(t, repo.Access())
	require.Empty(t, repo.Refresh())
}

func TestRenewalRejectionClearsCredentials(t *testing.T) {
	b := newTestBackend(t)
	b.renewStatus = http.StatusUnauthorized
	gw, repo := setupGateway(t, b)

	_, err := getData(gw)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))
	require.False(t, gateway.IsNetwork(err))
	require.Empty(t, repo.Access())
	require.Empty(t, repo.Refresh())
}

func TestRenewalPayloadWithoutAccessTokenFailsWithOriginalError(t *testing.T) {
	b := newTestBackend(t)
	b.renewPayload = map[string]string{"token_type": "bearer"}
	gw, repo := setupGateway(t, b)

	_, err := getData(gw)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))
	require.Empty(t, repo.Access())
	require.Empty(t, repo.Refresh())
}

func TestRenewalTimeoutKeepsCredentials(t *testing.T) {
	b := newTestBackend(t)
	b.renewDelay = 2 * time.Second
	gw, repo := setupGateway(t, b, gateway.WithTimeout(200*time.Millisecond))

	_, err := getData(gw)
	require.Error(t, err)
	require.True(t, gateway.IsNetwork(err))
	require.Equal(t, oldAccess, repo.Access())
	require.Equal(t, oldRefresh, repo.Refresh())
}

func TestConcurrent401sCoalesceIntoOneRenewal(t *testing.T) {
	b := newTestBackend(t)
	// Hold the renewal long enough for every contender to queue behind it.
	b.renewDelay = 300 * time.Millisecond
	gw, repo := setupGateway(t, b)

	const n = 5
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = getData(gw)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "request %d", i)
	}
	require.EqualValues(t, 1, b.renewCalls.Load())
	require.Equal(t, newAccess, repo.Access())
}

func TestConcurrent401sAllRejectWhenRenewalFails(t *testing.T) {
	b := newTestBackend(t)
	b.renewDelay = 300 * time.Millisecond
	b.renewStatus = http.StatusBadRequest
	gw, repo := setupGateway(t, b)

	const n = 4
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = getData(gw)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.Error(t, err, "request %d", i)
		require.False(t, gateway.IsNetwork(err), "request %d", i)
	}
	require.EqualValues(t, 1, b.renewCalls.Load())
	require.Empty(t, repo.Access())
	require.Empty(t, repo.Refresh())
}

func TestNon401FailuresPropagateWithoutRenewal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/broken/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	})
	mux.HandleFunc("/invalid/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"bad payload"}`, http.StatusBadRequest)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	repo := repofake.NewFakeTokenRepo()
	require.NoError(t, repo.SetPair(oldAccess, oldRefresh))
	gw, err := gateway.New(server.URL, repo)
	require.NoError(t, err)

	_, err = gw.Do(context.Background(), gateway.Request{Method: http.MethodGet, Path: "broken/"})
	require.Equal(t, http.StatusInternalServerError, gateway.StatusCode(err))

	_, err = gw.Do(context.Background(), gateway.Request{Method: http.MethodGet, Path: "invalid/"})
	require.Equal(t, http.StatusBadRequest, gateway.StatusCode(err))

	// Credentials untouched in both cases.
	require.Equal(t, oldAccess, repo.Access())
	require.Equal(t, oldRefresh, repo.Refresh())
}

func TestUnreachableBackendIsNetworkError(t *testing.T) {
	repo := repofake.NewFakeTokenRepo()
	gw, err := gateway.New("http://127.0.0.1:1", repo, gateway.WithTimeout(200*time.Millisecond))
	require.NoError(t, err)

	_, err = gw.Do(context.Background(), gateway.Request{Method: http.MethodGet, Path: "data/"})
	require.Error(t, err)
	require.True(t, gateway.IsNetwork(err))
}

func TestRequestsDispatchUnauthenticatedWithoutStoredToken(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	gw, err := gateway.New(server.URL, repofake.NewFakeTokenRepo())
	require.NoError(t, err)

	_, err = gw.Do(context.Background(), gateway.Request{Method: http.MethodGet, Path: "public/"})
	require.NoError(t, err)
	require.Equal(t, "", gotAuth.Load())
}
