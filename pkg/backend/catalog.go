package backend

import (
	"strings"

	"github.com/arthur-debert/liveout/pkg/errors"
	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/registry"
	"github.com/arthur-debert/liveout/pkg/shell"
	"github.com/arthur-debert/liveout/pkg/types"
)

// Backend identifiers. Lookup lowercases its input, so these are the
// canonical spellings.
const (
	IDSilent   = "silent"
	IDCLI      = "cli"
	IDNotebook = "notebook"
	IDHosted   = "hosted"
)

// Spec describes a backend variant without constructing it: identity,
// capability flag, a one-line description and the constructor.
type Spec struct {
	ID          string
	CanUpdate   bool
	Description string
	New         func() types.Backend
}

// Registry is the fixed catalog of backend variants, built once and
// never mutated afterwards.
type Registry struct {
	specs registry.Registry[Spec]
}

// NewRegistry builds a catalog holding the four variants.
func NewRegistry() *Registry {
	r := &Registry{specs: registry.New[Spec]()}
	for _, spec := range []Spec{
		{
			ID:          IDSilent,
			CanUpdate:   false,
			Description: "discards everything",
			New:         func() types.Backend { return NewSilent() },
		},
		{
			ID:          IDCLI,
			CanUpdate:   false,
			Description: "prints to standard output, append only",
			New:         func() types.Backend { return NewCLI() },
		},
		{
			ID:          IDNotebook,
			CanUpdate:   true,
			Description: "repaints a reserved output slot in place",
			New:         func() types.Backend { return NewNotebook(nil) },
		},
		{
			ID:          IDHosted,
			CanUpdate:   true,
			Description: "like notebook, renders tables as HTML markup",
			New:         func() types.Backend { return NewHosted(nil) },
		},
	} {
		registry.MustRegister(r.specs, spec.ID, spec)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide catalog.
func Default() *Registry {
	return defaultRegistry
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	return r.specs.List()
}

// Specs returns all registered specs in identifier order.
func (r *Registry) Specs() []Spec {
	ids := r.specs.List()
	out := make([]Spec, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry.MustGet(r.specs, id))
	}
	return out
}

// Lookup returns the spec for an identifier. Lookup is
// case-insensitive; an unknown identifier is a configuration error
// whose message lists the valid ones.
func (r *Registry) Lookup(id string) (Spec, error) {
	spec, err := r.specs.Get(strings.ToLower(id))
	if err != nil {
		return Spec{}, errors.Newf(errors.ErrBackendUnknown,
			"unknown backend id %q, expected one of [%s]",
			id, strings.Join(r.IDs(), " "))
	}
	return spec, nil
}

// Select resolves a backend from any accepted selector form:
//
//   - nil selects by environment detection
//   - a string identifier constructs a fresh instance from the catalog
//   - an existing Backend passes through unchanged
//
// Anything else is a type error.
func (r *Registry) Select(sel any) (types.Backend, error) {
	switch s := sel.(type) {
	case nil:
		return r.ForShell(shell.Describe()), nil
	case string:
		spec, err := r.Lookup(s)
		if err != nil {
			return nil, err
		}
		return spec.New(), nil
	case types.Backend:
		return s, nil
	default:
		return nil, errors.Newf(errors.ErrSelectorType,
			"invalid backend selector of type %T, expected nil, a string id or a Backend instance",
			sel)
	}
}

// ForShell maps a shell descriptor to the backend detection selects:
// notebook-family shells get their matching backend, everything else
// gets cli.
func (r *Registry) ForShell(info shell.Info) types.Backend {
	var id string
	switch info.Kind {
	case shell.KindNotebook:
		id = IDNotebook
	case shell.KindHosted:
		id = IDHosted
	default:
		id = IDCLI
	}

	logging.GetLogger("backend").Debug().
		Str("shell", info.Kind.String()).
		Str("shellName", info.Name).
		Str("backend", id).
		Msg("backend detected")

	return registry.MustGet(r.specs, id).New()
}

// Select resolves a backend through the process-wide catalog.
func Select(sel any) (types.Backend, error) {
	return Default().Select(sel)
}
