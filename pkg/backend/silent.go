package backend

import (
	"github.com/arthur-debert/liveout/pkg/types"
)

// Silent discards everything. It is the backend for library use inside
// tools that manage their own output.
type Silent struct{}

var _ types.Backend = (*Silent)(nil)

// NewSilent returns the suppressing backend.
func NewSilent() *Silent {
	return &Silent{}
}

func (*Silent) ID() string      { return IDSilent }
func (*Silent) CanUpdate() bool { return false }

func (*Silent) Display(any)   {}
func (*Silent) ClearDisplay() {}
func (*Silent) ClearOutput()  {}
