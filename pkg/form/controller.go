// Package form implements the callback form state machine shared by the
// terminal client and mirrored by the landing page script.
//
// A submission moves idle -> loading -> success|error and drops back to idle
// after ResetDelay. Each submission gets an increasing id and the reset timer
// only applies to the submission that armed it.
package form

import (
	"context"
	"strings"
	"sync"
	"time"
)

// State is the four-valued submission status
type State int

const (
	Idle State = iota
	Loading
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

const (
	ResetDelay = 3 * time.Second

	SuccessMessage = "Success! We're calling you now."
	ErrorMessage   = "Something went wrong. Please try calling us directly."

	LabelIdle    = "Get Instant Callback"
	LabelLoading = "Connecting..."
	LabelSuccess = "Connected"
)

// Submitter sends one callback request. A nil error means the server
// answered with a 2xx status.
type Submitter interface {
	SubmitCallback(ctx context.Context, phone string) error
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, phone string) error

func (f SubmitterFunc) SubmitCallback(ctx context.Context, phone string) error {
	return f(ctx, phone)
}

// Snapshot is a copy of the controller state handed to the change callback
type Snapshot struct {
	Phone        string
	State        State
	Message      string
	Disabled     bool
	SubmissionID uint64
}

// ButtonLabel returns the submit button text for the snapshot's state
func (s Snapshot) ButtonLabel() string {
	switch s.State {
	case Loading:
		return LabelLoading
	case Success:
		return LabelSuccess
	default:
		return LabelIdle
	}
}

// Option customizes a Controller
type Option func(*Controller)

// WithResetDelay overrides how long a terminal state is shown
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.resetDelay = d
	}
}

// WithAfterFunc replaces the timer used to schedule resets
func WithAfterFunc(afterFunc func(d time.Duration, f func())) Option {
	return func(c *Controller) {
		if afterFunc != nil {
			c.afterFunc = afterFunc
		}
	}
}

// WithOnChange registers the callback invoked after every state transition.
// It is called without the controller lock held.
func WithOnChange(onChange func(Snapshot)) Option {
	return func(c *Controller) {
		c.onChange = onChange
	}
}

// Controller owns the phone input value and the submission state
type Controller struct {
	submitter  Submitter
	resetDelay time.Duration
	afterFunc  func(d time.Duration, f func())
	onChange   func(Snapshot)

	mu           sync.Mutex
	phone        string
	state        State
	message      string
	submissionID uint64
}

// New creates a Controller in the idle state
func New(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		submitter:  submitter,
		resetDelay: ResetDelay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetPhone updates the bound input value. Input edits are not state
// transitions and do not fire the change callback.
func (c *Controller) SetPhone(phone string) {
	c.mu.Lock()
	c.phone = phone
	c.mu.Unlock()
}

// Disabled reports whether Submit would be a no-op
func (c *Controller) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabledLocked()
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Submit sends the trimmed phone number and blocks until the request
// resolves. It returns false without side effects when the form is disabled.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.disabledLocked() {
		c.mu.Unlock()
		return false
	}
	phone := strings.TrimSpace(c.phone)
	c.submissionID++
	id := c.submissionID
	c.state = Loading
	c.message = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	err := c.submitter.SubmitCallback(ctx, phone)

	c.mu.Lock()
	if err != nil {
		c.state = Error
		c.message = ErrorMessage
	} else {
		c.state = Success
		c.message = SuccessMessage
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	c.scheduleReset(id)
	return true
}

func (c *Controller) scheduleReset(id uint64) {
	c.afterFunc(c.resetDelay, func() {
		c.mu.Lock()
		if c.submissionID != id {
			// a newer submission owns the state now
			c.mu.Unlock()
			return
		}
		c.state = Idle
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
	})
}

func (c *Controller) disabledLocked() bool {
	return c.state == Loading || strings.TrimSpace(c.phone) == ""
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Phone:        c.phone,
		State:        c.state,
		Message:      c.message,
		Disabled:     c.disabledLocked(),
		SubmissionID: c.submissionID,
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
