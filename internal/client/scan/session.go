// Package scan manages a barcode-scanning session. Decoding is external:
// a Camera implementation delivers decoded payload strings to
// Session.HandleDecode, which collapses duplicate decode callbacks for the
// same physical scan into exactly one processed event.
package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fieldassets/fieldassets/internal/common"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// State of a scan session.
type State int32

const (
	// StateIdle: no camera, no lock held. Initial state.
	StateIdle State = iota
	// StateArmed: camera active, awaiting a decode event.
	StateArmed
	// StateLocked: one decode is being processed; all others are dropped.
	StateLocked
	// StateAwaitingAck: a terminal error is shown and needs explicit
	// dismissal before the session rearms.
	StateAwaitingAck
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateLocked:
		return "locked"
	case StateAwaitingAck:
		return "awaiting-ack"
	default:
		return "unknown"
	}
}

// Outcome classifies the processing of one decoded payload.
type Outcome int

const (
	// OutcomeVerified: the mutation succeeded; the session unlocks.
	OutcomeVerified Outcome = iota
	// OutcomeRejected: the payload failed validation; no mutation was
	// attempted. Needs operator acknowledgment.
	OutcomeRejected
	// OutcomeFailed: the mutation was attempted and failed; retryable
	// after acknowledgment.
	OutcomeFailed
)

// Camera starts and stops the decode-event producer.
type Camera interface {
	// RequestPermission asks for (or confirms) camera access. An error
	// keeps the session in Idle.
	RequestPermission(ctx context.Context) error
	// Start begins delivering decode events.
	Start() error
	// Stop ceases delivery. Must be safe to call repeatedly.
	Stop()
}

// Processor consumes a single decoded payload and reports the outcome.
type Processor interface {
	Process(ctx context.Context, payload string) (Outcome, error)
}

// Session is the scan state machine. The session lock is the only mutable
// state shared between the decode-event stream and the processing chain,
// and it is owned exclusively by this type.
type Session struct {
	camera Camera
	proc   Processor
	log    logging.Logger

	mu      sync.Mutex
	state   State
	gen     uint64 // bumped on Start/Cancel so stale outcomes are discarded
	lastErr error
}

// NewSession returns a session in StateIdle.
func NewSession(camera Camera, proc Processor, log logging.Logger) *Session {
	return &Session{
		camera: camera,
		proc:   proc,
		log:    log.With("scan_session", uuid.NewString()),
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastErr returns the error being displayed in StateAwaitingAck, nil
// otherwise.
func (s *Session) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Start arms the session: camera permission is confirmed, the camera is
// started and decode events are accepted. Only valid in StateIdle.
func (s *Session) Start(ctx context.Context) error {
	if err := s.camera.RequestPermission(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPermission, err)
	}

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return errors.New("session already active")
	}
	s.state = StateArmed
	s.gen++
	s.mu.Unlock()

	if err := s.camera.Start(); err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return err
	}
	return nil
}

// HandleDecode is the single entry point for decoded-payload events.
//
// The Armed check and the flip to Locked happen under one lock
// acquisition: a burst of decode callbacks for the same physical barcode
// collapses into exactly one processed scan, and the rest return
// immediately. The camera is stopped strictly before the processor runs,
// so the code cannot be decoded again while a mutation is in flight.
func (s *Session) HandleDecode(ctx context.Context, payload string) {
	s.mu.Lock()
	if s.state != StateArmed {
		s.mu.Unlock()
		return
	}
	s.state = StateLocked
	gen := s.gen
	s.mu.Unlock()

	s.camera.Stop()
	s.log.Info(ctx, "payload accepted", "payload", payload)

	outcome, err := s.proc.Process(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || s.state != StateLocked {
		// The session was cancelled while the scan was in flight; the
		// outcome must not reach a session that no longer exists.
		s.log.Warn(ctx, "discarding outcome of cancelled scan", "payload", payload)
		return
	}
	if outcome == OutcomeVerified && err == nil {
		s.state = StateIdle
		s.lastErr = nil
		return
	}
	s.state = StateAwaitingAck
	s.lastErr = err
}

// Acknowledge dismisses the error shown after a rejected or failed scan
// and rearms the session. The lock is held for the whole time the error is
// displayed; only this call releases it, never a timer.
func (s *Session) Acknowledge() error {
	s.mu.Lock()
	if s.state != StateAwaitingAck {
		s.mu.Unlock()
		return errors.New("nothing to acknowledge")
	}
	s.state = StateArmed
	s.lastErr = nil
	s.mu.Unlock()

	return s.camera.Start()
}

// Cancel closes the scanner. It always wins, in any state: decode events
// stop being accepted immediately and an in-flight outcome, if any, is
// discarded when it resolves.
func (s *Session) Cancel() {
	s.mu.Lock()
	s.gen++
	s.state = StateIdle
	s.lastErr = nil
	s.mu.Unlock()

	s.camera.Stop()
}
