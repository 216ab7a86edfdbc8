package dsyrs

import (
	"context"
	"sync"
	"time"
)

// SyncClient is a blocking, goroutine-safe wrapper around Client for
// callers that have no context to propagate. All bus work runs on one
// dedicated goroutine, and a mutex keeps multi-transaction operations
// whole, so two goroutines can not interleave their register sequences.
type SyncClient struct {
	mu      sync.Mutex
	client  *Client
	timeout time.Duration

	requests chan func()
	done     chan struct{}

	closed    bool // guarded by mu
	closeOnce sync.Once
}

// SyncOption configures a SyncClient.
type SyncOption func(*SyncClient)

// WithCallTimeout bounds each blocking call. Zero means no bound.
func WithCallTimeout(d time.Duration) SyncOption {
	return func(s *SyncClient) { s.timeout = d }
}

// NewSyncClient wraps an existing Client. The wrapper owns the client from
// here on; direct use of c afterwards breaks the serialization guarantee.
func NewSyncClient(c *Client, opts ...SyncOption) *SyncClient {
	s := &SyncClient{
		client:   c,
		requests: make(chan func()),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// ConnectSync opens the serial device and returns a ready blocking client
// for the given station.
func ConnectSync(cfg ConnConfig, servo ServoConfig, opts ...SyncOption) (*SyncClient, error) {
	conn, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	s := NewSyncClient(NewClient(conn), opts...)
	if err := s.Init(servo); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *SyncClient) run() {
	for job := range s.requests {
		job()
	}
	close(s.done)
}

// Do runs fn on the worker goroutine with exclusive access to the client
// and blocks until it returns. It is the escape hatch for operations the
// wrapper does not cover.
func (s *SyncClient) Do(fn func(ctx context.Context, c *Client) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrTransportReleased
	}

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	errc := make(chan error, 1)
	s.requests <- func() { errc <- fn(ctx, s.client) }
	return <-errc
}

// Close shuts down the worker and the underlying transport. It waits for
// an in-flight operation to finish first.
func (s *SyncClient) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		close(s.requests)
		<-s.done
		if t := s.client.ReleaseTransport(); t != nil {
			err = t.Close()
		}
	})
	return err
}

// Init applies the base drive setup. See Client.Init.
func (s *SyncClient) Init(cfg ServoConfig) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.Init(ctx, cfg)
	})
}

// SetSlave selects the station address for subsequent operations.
func (s *SyncClient) SetSlave(slaveID byte) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.SetSlave(slaveID)
	})
}

// ReadRegister reads one holding register as a raw word.
func (s *SyncClient) ReadRegister(address uint16) (uint16, error) {
	var value uint16
	err := s.Do(func(ctx context.Context, c *Client) error {
		var err error
		value, err = c.ReadRegister(ctx, address)
		return err
	})
	return value, err
}

// WriteRegister writes one holding register as a raw word.
func (s *SyncClient) WriteRegister(address, value uint16) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.WriteRegister(ctx, address, value)
	})
}

// SetControlMode writes the control mode.
func (s *SyncClient) SetControlMode(mode ControlMode) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.SetControlMode(ctx, mode)
	})
}

// SetRigidity writes the rigidity level, 0 to 31.
func (s *SyncClient) SetRigidity(level uint16) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.SetRigidity(ctx, level)
	})
}

// SetSpeedCommand writes the keyboard speed command in rpm.
func (s *SyncClient) SetSpeedCommand(rpm int16) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.SetSpeedCommand(ctx, rpm)
	})
}

// ApplyJogConfig writes the jog motion parameters.
func (s *SyncClient) ApplyJogConfig(cfg JogConfig) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.ApplyJogConfig(ctx, cfg)
	})
}

// ApplyGainParams writes the first gain set.
func (s *SyncClient) ApplyGainParams(p GainParams) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.ApplyGainParams(ctx, p)
	})
}

// ApplyCommConfig writes the RS485 communication parameters.
func (s *SyncClient) ApplyCommConfig(cfg CommConfig) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.ApplyCommConfig(ctx, cfg)
	})
}

// ConfigureSegment writes one step of the multi-segment program.
func (s *SyncClient) ConfigureSegment(segment uint8, cfg SegmentConfig) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.ConfigureSegment(ctx, segment, cfg)
	})
}

// SetSegmentProgram writes the multi-segment program frame.
func (s *SyncClient) SetSegmentProgram(mode MultiSegOperationMode, start, end uint8, unit WaitTimeUnit, position MultiSegPositionMode) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.SetSegmentProgram(ctx, mode, start, end, unit, position)
	})
}

// ApplyHomingConfig writes the homing parameter block.
func (s *SyncClient) ApplyHomingConfig(cfg HomingConfig) error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.ApplyHomingConfig(ctx, cfg)
	})
}

// StartHoming triggers the homing routine.
func (s *SyncClient) StartHoming() error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.StartHoming(ctx)
	})
}

// FaultReset clears a resettable fault.
func (s *SyncClient) FaultReset() error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.FaultReset(ctx)
	})
}

// EmergencyStop triggers an immediate stop.
func (s *SyncClient) EmergencyStop() error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.EmergencyStop(ctx)
	})
}

// WriteEEPROM commits the parameter set to the non-volatile store.
func (s *SyncClient) WriteEEPROM() error {
	return s.Do(func(ctx context.Context, c *Client) error {
		return c.WriteEEPROM(ctx)
	})
}

// GetState reads the drive state.
func (s *SyncClient) GetState() (ServoState, error) {
	var state ServoState
	err := s.Do(func(ctx context.Context, c *Client) error {
		var err error
		state, err = c.GetState(ctx)
		return err
	})
	return state, err
}

// GetStatus reads the full status snapshot.
func (s *SyncClient) GetStatus() (ServoStatus, error) {
	var status ServoStatus
	err := s.Do(func(ctx context.Context, c *Client) error {
		var err error
		status, err = c.GetStatus(ctx)
		return err
	})
	return status, err
}

// GetVersion reads the firmware identification registers.
func (s *SyncClient) GetVersion() (Version, error) {
	var v Version
	err := s.Do(func(ctx context.Context, c *Client) error {
		var err error
		v, err = c.GetVersion(ctx)
		return err
	})
	return v, err
}
