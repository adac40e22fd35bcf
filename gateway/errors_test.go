package gateway

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	httpErr := &HTTPError{StatusCode: http.StatusUnauthorized, Body: []byte(`{"detail":"no"}`)}
	netErr := &NetworkError{Err: errors.New("connection refused")}

	require.Equal(t, http.StatusUnauthorized, StatusCode(httpErr))
	require.True(t, IsUnauthorized(httpErr))
	require.False(t, IsNetwork(httpErr))

	require.Equal(t, 0, StatusCode(netErr))
	require.False(t, IsUnauthorized(netErr))
	require.True(t, IsNetwork(netErr))

	// Classification survives wrapping.
	require.True(t, IsNetwork(errors.Wrap(netErr, "[Store.Login] login")))
	require.Equal(t, http.StatusUnauthorized, StatusCode(errors.Wrap(httpErr, "[Store.Login] login")))
}

func TestMessage(t *testing.T) {
	const fallback = "Une erreur est survenue."

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "detail field wins",
			err:  &HTTPError{StatusCode: 400, Body: []byte(`{"detail":"Identifiants invalides.","message":"autre"}`)},
			want: "Identifiants invalides.",
		},
		{
			name: "message field as second choice",
			err:  &HTTPError{StatusCode: 400, Body: []byte(`{"message":"Stock insuffisant."}`)},
			want: "Stock insuffisant.",
		},
		{
			name: "bare JSON string body",
			err:  &HTTPError{StatusCode: 400, Body: []byte(`"Page introuvable."`)},
			want: "Page introuvable.",
		},
		{
			name: "plain text body",
			err:  &HTTPError{StatusCode: 502, Body: []byte("Bad Gateway")},
			want: "Bad Gateway",
		},
		{
			name: "JSON object without known fields",
			err:  &HTTPError{StatusCode: 400, Body: []byte(`{"email":["requis"]}`)},
			want: fallback,
		},
		{
			name: "empty body",
			err:  &HTTPError{StatusCode: 500, Body: nil},
			want: fallback,
		},
		{
			name: "network error",
			err:  &NetworkError{Err: errors.New("timeout")},
			want: fallback,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Message(tc.err, fallback))
		})
	}
}
