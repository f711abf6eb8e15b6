// Package registry provides a generic, thread-safe registry for storing
// and retrieving items by name. liveout uses it to hold the catalog of
// display backend specs, but the container itself is type-agnostic.
package registry
