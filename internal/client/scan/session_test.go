package scan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldassets/fieldassets/internal/common"
	"github.com/fieldassets/fieldassets/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeCamera struct {
	permissionErr error
	active        atomic.Bool
	starts        atomic.Int32
}

func (c *fakeCamera) RequestPermission(ctx context.Context) error { return c.permissionErr }
func (c *fakeCamera) Start() error                                { c.starts.Add(1); c.active.Store(true); return nil }
func (c *fakeCamera) Stop()                                       { c.active.Store(false) }

type fakeProcessor struct {
	mu       sync.Mutex
	payloads []string
	outcome  Outcome
	err      error

	// when set, Process blocks until release is closed
	release chan struct{}

	// snapshot of camera activity at the moment Process is entered
	camera       *fakeCamera
	cameraActive atomic.Bool
}

func (p *fakeProcessor) Process(ctx context.Context, payload string) (Outcome, error) {
	p.mu.Lock()
	p.payloads = append(p.payloads, payload)
	p.mu.Unlock()
	if p.camera != nil {
		p.cameraActive.Store(p.camera.active.Load())
	}
	if p.release != nil {
		<-p.release
	}
	return p.outcome, p.err
}

func (p *fakeProcessor) calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.payloads...)
}

func startedSession(t *testing.T, cam *fakeCamera, proc *fakeProcessor) *Session {
	t.Helper()
	s := NewSession(cam, proc, testLogger())
	require.NoError(t, s.Start(context.Background()))
	require.Equal(t, StateArmed, s.State())
	return s
}

func TestStart_PermissionDeniedStaysIdle(t *testing.T) {
	cam := &fakeCamera{permissionErr: errors.New("denied by user")}
	s := NewSession(cam, &fakeProcessor{}, testLogger())

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPermission)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, int32(0), cam.starts.Load())
}

func TestHandleDecode_SingleFlightSequentialBurst(t *testing.T) {
	cam := &fakeCamera{}
	proc := &fakeProcessor{outcome: OutcomeRejected, err: common.ErrValidation}
	s := startedSession(t, cam, proc)

	// the same physical barcode decoded three times in a row
	s.HandleDecode(context.Background(), "X123")
	s.HandleDecode(context.Background(), "X123")
	s.HandleDecode(context.Background(), "X123")

	assert.Equal(t, []string{"X123"}, proc.calls(), "duplicates must be dropped")
	assert.Equal(t, StateAwaitingAck, s.State())
}

func TestHandleDecode_SingleFlightConcurrentBurst(t *testing.T) {
	cam := &fakeCamera{}
	proc := &fakeProcessor{outcome: OutcomeVerified, release: make(chan struct{})}
	s := startedSession(t, cam, proc)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.HandleDecode(context.Background(), "X123")
		}()
	}

	// give the losers time to hit the guard and return
	require.Eventually(t, func() bool { return len(proc.calls()) == 1 }, time.Second, 5*time.Millisecond)
	close(proc.release)
	wg.Wait()

	assert.Equal(t, []string{"X123"}, proc.calls())
	assert.Equal(t, StateIdle, s.State())
}

func TestHandleDecode_CameraStoppedBeforeProcessing(t *testing.T) {
	cam := &fakeCamera{}
	proc := &fakeProcessor{outcome: OutcomeVerified, camera: cam}
	s := startedSession(t, cam, proc)

	s.HandleDecode(context.Background(), "X123")

	assert.False(t, proc.cameraActive.Load(), "camera must be off before the mutation starts")
	assert.Equal(t, StateIdle, s.State())
}

func TestAcknowledge_RearmsAndAcceptsNextPayload(t *testing.T) {
	cam := &fakeCamera{}
	proc := &fakeProcessor{outcome: OutcomeRejected, err: common.ErrValidation}
	s := startedSession(t, cam, proc)

	s.HandleDecode(context.Background(), "BAD-1")
	require.Equal(t, StateAwaitingAck, s.State())
	require.ErrorIs(t, s.LastErr(), common.ErrValidation)

	// lock stays held until explicit dismissal
	s.HandleDecode(context.Background(), "BAD-2")
	assert.Equal(t, []string{"BAD-1"}, proc.calls())

	require.NoError(t, s.Acknowledge())
	assert.Equal(t, StateArmed, s.State())
	assert.Nil(t, s.LastErr())

	proc.outcome = OutcomeVerified
	proc.err = nil
	s.HandleDecode(context.Background(), "GOOD-1")
	assert.Equal(t, []string{"BAD-1", "GOOD-1"}, proc.calls())
}

func TestAcknowledge_OnlyValidWhenAwaiting(t *testing.T) {
	s := NewSession(&fakeCamera{}, &fakeProcessor{}, testLogger())
	require.Error(t, s.Acknowledge())
}

func TestCancel_DiscardsInFlightOutcome(t *testing.T) {
	cam := &fakeCamera{}
	proc := &fakeProcessor{outcome: OutcomeFailed, err: common.ErrNetwork, release: make(chan struct{})}
	s := startedSession(t, cam, proc)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.HandleDecode(context.Background(), "X123")
	}()
	require.Eventually(t, func() bool { return len(proc.calls()) == 1 }, time.Second, 5*time.Millisecond)

	// the user closes the scanner while the call is still in flight
	s.Cancel()
	assert.Equal(t, StateIdle, s.State())

	close(proc.release)
	<-done

	// the late outcome must not be applied to the closed session
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.LastErr())
}

func TestCancel_AlwaysWins(t *testing.T) {
	cam := &fakeCamera{}
	proc := &fakeProcessor{outcome: OutcomeRejected, err: common.ErrValidation}
	s := startedSession(t, cam, proc)

	s.HandleDecode(context.Background(), "BAD-1")
	require.Equal(t, StateAwaitingAck, s.State())

	s.Cancel()
	assert.Equal(t, StateIdle, s.State())
	assert.False(t, cam.active.Load())

	// a cancelled session can be started again
	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, StateArmed, s.State())
}

func TestStart_ErrorsWhenAlreadyActive(t *testing.T) {
	cam := &fakeCamera{}
	s := startedSession(t, cam, &fakeProcessor{})
	require.Error(t, s.Start(context.Background()))
}
