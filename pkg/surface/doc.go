// Package surface implements the output areas updating backends render
// into. Terminal repaints a contiguous block of lines in place on an
// ANSI terminal; Memory records everything for inspection and is the
// double backend tests run against.
package surface
