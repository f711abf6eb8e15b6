package config

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the settings.
func NewContext(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the settings carried by ctx. A context without
// settings yields the built-in defaults.
func FromContext(ctx context.Context) *Settings {
	if s, ok := ctx.Value(ctxKey{}).(*Settings); ok && s != nil {
		return s
	}
	return &Settings{Color: ColorAuto}
}
