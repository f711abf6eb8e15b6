package backend

import (
	"github.com/arthur-debert/liveout/pkg/types"
)

// Normalization prepares a value for a specific backend before it is
// shown. Returning nil means "suppress this call's effect": the
// backend shows nothing new and leaves prior output untouched.

// normalizeCLI unwraps style-wrappers to their plain data and drops
// empty tabular values; a text stream has nothing useful to print for
// either.
func normalizeCLI(v any) any {
	if styler, ok := v.(types.Styler); ok {
		v = styler.Data()
	}
	if types.EmptyTabular(v) {
		return nil
	}
	return v
}

// normalizeNotebook is the identity. A notebook surface runs native
// renderings, so every value passes through untouched.
func normalizeNotebook(v any) any {
	return v
}

// normalizeHosted converts style-wrappers to their markup form. The
// hosted surface accepts markup but cannot execute the wrapper's
// native rendering path. Everything else passes through.
func normalizeHosted(v any) any {
	if styler, ok := v.(types.Styler); ok {
		return styler.HTML()
	}
	return v
}
