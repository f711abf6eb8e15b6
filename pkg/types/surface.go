package types

// Surface is the output area an updating backend renders into. Concrete
// implementations live in pkg/surface; backends only consume this
// capability.
type Surface interface {
	// Reserve allocates a new updatable slot on the surface and
	// returns its handle. Slots keep their position for the lifetime
	// of the surface.
	Reserve() Handle

	// Clear erases the surface's entire output area, including every
	// reserved slot's content. It returns only after the clear has
	// been written out. Reserved handles stay valid; the next Update
	// repaints them.
	Clear()
}

// Handle addresses one reserved slot on a Surface.
type Handle interface {
	// Update replaces the slot's content with v. Updating with nil
	// blanks the slot while keeping it reserved.
	Update(v any)
}
