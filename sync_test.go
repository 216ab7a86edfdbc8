package dsyrs

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncClientBasicOps(t *testing.T) {
	ft := newFakeTransport()
	s := NewSyncClient(NewClient(ft))

	require.NoError(t, s.Init(NewServoConfig(1)))
	require.NoError(t, s.SetRigidity(15))
	assert.Equal(t, uint16(15), ft.get(P00Rigidity))

	ft.set(P18ServoStatus, 1)
	state, err := s.GetState()
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)

	require.NoError(t, s.Close())
	assert.True(t, ft.closed)
}

func TestSyncClientSerializesCompositeOps(t *testing.T) {
	ft := newFakeTransport()
	s := NewSyncClient(NewClient(ft))
	defer s.Close()

	require.NoError(t, s.SetSlave(1))

	// Fire composite operations from many goroutines; each one is a fixed
	// register sequence, so the call log must decompose into whole,
	// uninterleaved sequences.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.NoError(t, s.ApplyGainParams(NewGainParams()))
			} else {
				assert.NoError(t, s.ApplyHomingConfig(NewHomingConfig()))
			}
		}(i)
	}
	wg.Wait()

	gainSeq := []uint16{P07PositionGain1, P07SpeedGain1, P07SpeedIntegral1, P07SpeedFilter1}
	homingSeq := []uint16{P16HomingMode, P16HomingHighSpeed, P16HomingLowSpeed, P16HomingAccel, P16HomingTimeout, P16HomeOffset}

	calls := ft.callLog()
	require.NotEmpty(t, calls, "after SetSlave the log holds only composite sequences")
	for i := 0; i < len(calls); {
		var seq []uint16
		switch calls[i].address {
		case gainSeq[0]:
			seq = gainSeq
		case homingSeq[0]:
			seq = homingSeq
		default:
			t.Fatalf("call %d: unexpected sequence start %#04x", i, calls[i].address)
		}
		for j, addr := range seq {
			require.Less(t, i+j, len(calls), "truncated sequence at call %d", i)
			require.Equal(t, addr, calls[i+j].address, "interleaved sequence at call %d", i+j)
		}
		i += len(seq)
	}
}

func TestSyncClientDo(t *testing.T) {
	ft := newFakeTransport()
	ft.set(P00MaxSpeed, 3000)
	s := NewSyncClient(NewClient(ft))
	defer s.Close()

	require.NoError(t, s.SetSlave(1))

	var rpm uint16
	err := s.Do(func(ctx context.Context, c *Client) error {
		var err error
		rpm, err = c.GetMaxSpeed(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(3000), rpm)
}

func TestSyncClientClosedCalls(t *testing.T) {
	ft := newFakeTransport()
	s := NewSyncClient(NewClient(ft))

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.SetRigidity(1), ErrTransportReleased)
	_, err := s.GetState()
	assert.ErrorIs(t, err, ErrTransportReleased)
	require.NoError(t, s.Close(), "closing twice is fine")
}

func TestConnectSyncInitFailure(t *testing.T) {
	// A bad station address must surface before any bus traffic.
	ft := newFakeTransport()
	s := NewSyncClient(NewClient(ft))
	err := s.Init(NewServoConfig(248))
	var serr *SlaveIDError
	require.ErrorAs(t, err, &serr)
	require.NoError(t, s.Close())
}
