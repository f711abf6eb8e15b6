// Package backend implements liveout's display strategies and the
// catalog that resolves them: silent (discard everything), cli (append
// plain text), notebook (update one reserved slot in place) and hosted
// (the notebook machinery with markup conversion for style-wrapped
// values).
//
// Callers normally go through Select, which accepts nil for automatic
// environment detection, a string identifier, or a prebuilt backend.
package backend
