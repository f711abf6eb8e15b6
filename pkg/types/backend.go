package types

// Backend is a display strategy for the "current result" of a running
// operation. A caller holds one backend per logical operation and pushes
// successive values into it; the backend decides how (and whether) each
// value reaches the user.
//
// Operations do not return errors. A backend that cannot write its
// output logs the problem and carries on; display is best-effort by
// contract.
type Backend interface {
	// ID returns the backend's registry identifier (lowercase).
	ID() string

	// CanUpdate reports whether the backend replaces previously shown
	// output in place. When false, every Display call appends.
	CanUpdate() bool

	// Display shows v as the current result. A nil value, or a value
	// the backend's normalization reduces to nothing, is silently
	// ignored.
	Display(v any)

	// ClearDisplay blanks the backend's updatable region, if it has
	// one. Backends without update capability treat this as a no-op.
	ClearDisplay()

	// ClearOutput clears the backend's whole output area. It returns
	// only once the clear has taken effect, so a Display issued
	// afterwards cannot be overwritten by a still-pending clear.
	ClearOutput()
}
