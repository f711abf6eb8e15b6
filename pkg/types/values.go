package types

// HTML is rendered markup ready to hand to a surface that displays rich
// content. It is a distinct type so surfaces can tell markup apart from
// ordinary strings.
type HTML string

// Shower is a value that knows how to present itself. The cli backend
// defers to it instead of applying its own formatting.
type Shower interface {
	Show()
}

// Tabular is a value with row/column structure. Backends use it only to
// detect emptiness; rendering stays with the value itself.
type Tabular interface {
	Rows() int
	Cols() int
}

// Styler is a presentation wrapper around a tabular value. Data returns
// the underlying plain form for surfaces that cannot run the wrapper's
// native rendering; HTML returns the rendered-markup form for hosted
// surfaces that accept markup but not native rendering.
type Styler interface {
	Data() Tabular
	HTML() HTML
}

// EmptyTabular reports whether v is a Tabular with nothing in it: at
// least one axis of zero length. Non-tabular values are never empty in
// this sense.
func EmptyTabular(v any) bool {
	t, ok := v.(Tabular)
	if !ok {
		return false
	}
	return t.Rows() == 0 || t.Cols() == 0
}
