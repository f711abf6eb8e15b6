package surface

import (
	"fmt"

	"github.com/arthur-debert/liveout/pkg/types"
)

// renderText converts a slot value to the text a surface draws. Markup
// values are passed through as their raw string form; terminals show
// the markup source rather than pretending to render it.
func renderText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case types.HTML:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%+v", val)
	}
}
