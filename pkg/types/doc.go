// Package types defines the core contracts of liveout: the Backend
// interface every display strategy implements, the Surface/Handle pair
// backends render through, and the structural affordances (Shower,
// Tabular, Styler) that displayable values may carry.
//
// The package has no dependencies on the rest of liveout so that both
// backend implementations and caller code can import it freely.
package types
