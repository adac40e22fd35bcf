package gateway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenewerFirstJoinerStarts(t *testing.T) {
	r := newRenewer()

	ch1, started1 := r.join()
	require.True(t, started1)

	ch2, started2 := r.join()
	ch3, started3 := r.join()
	require.False(t, started2)
	require.False(t, started3)

	r.settle(renewResult{token: "acc"})

	for _, ch := range []<-chan renewResult{ch1, ch2, ch3} {
		res := <-ch
		require.Equal(t, "acc", res.token)
	}
}

func TestRenewerResetsAfterSettle(t *testing.T) {
	r := newRenewer()

	ch, started := r.join()
	require.True(t, started)
	r.settle(renewResult{token: "acc-1"})
	require.Equal(t, "acc-1", (<-ch).token)

	// A later failure starts a fresh cycle with a fresh outcome.
	ch, started = r.join()
	require.True(t, started)
	r.settle(renewResult{err: errEmptyRenewalPayload})
	res := <-ch
	require.Empty(t, res.token)
	require.ErrorIs(t, res.err, errEmptyRenewalPayload)
}
