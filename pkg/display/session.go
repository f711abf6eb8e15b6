// Package display is the high-level facade callers drive: a Session
// owns one resolved backend for a logical operation, and a Monitor is
// the named-field progress panel typically pushed through it.
package display

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/liveout/pkg/backend"
	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/types"
)

// Session owns one display backend for the duration of a logical
// operation. It adds nothing to the backend contract beyond resolution
// and logging; callers that want the raw backend can take it.
type Session struct {
	backend types.Backend
	log     zerolog.Logger
}

type options struct {
	verbose  bool
	registry *backend.Registry
}

// Option adjusts session construction.
type Option func(*options)

// WithVerbose controls whether the session produces output at all.
// False forces the silent backend regardless of the selector.
func WithVerbose(verbose bool) Option {
	return func(o *options) { o.verbose = verbose }
}

// WithRegistry resolves the selector against a custom catalog instead
// of the process-wide one.
func WithRegistry(r *backend.Registry) Option {
	return func(o *options) { o.registry = r }
}

// NewSession resolves sel the way backend.Select does (nil for
// detection, a string id, or a prebuilt backend) and wraps the result.
func NewSession(sel any, opts ...Option) (*Session, error) {
	o := &options{verbose: true, registry: backend.Default()}
	for _, opt := range opts {
		opt(o)
	}

	log := logging.GetLogger("display")

	if !o.verbose {
		log.Debug().Msg("session muted")
		return &Session{backend: backend.NewSilent(), log: log}, nil
	}

	b, err := o.registry.Select(sel)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("backend", b.ID()).
		Bool("canUpdate", b.CanUpdate()).
		Msg("session backend resolved")

	return &Session{backend: b, log: log}, nil
}

// Show pushes v as the operation's current result.
func (s *Session) Show(v any) {
	s.backend.Display(v)
}

// ClearDisplay blanks the session's own output slot, where the backend
// has one.
func (s *Session) ClearDisplay() {
	s.backend.ClearDisplay()
}

// ClearOutput clears the whole output area, typically before a fresh
// phase of the operation.
func (s *Session) ClearOutput() {
	s.backend.ClearOutput()
}

// Backend returns the resolved backend.
func (s *Session) Backend() types.Backend {
	return s.backend
}
