// Package shell identifies the kind of host environment the process is
// running under: a plain terminal, an interactive notebook kernel, a
// hosted notebook service, or nothing interactive at all. The answer
// drives automatic display backend selection.
//
// Detection reads environment markers and the stdout TTY state through
// a small Probe interface, so tests can substitute any environment.
// Detection never fails: an empty or negative probe resolves to
// KindNone.
package shell
