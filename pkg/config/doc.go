// Package config assembles liveout's runtime settings. Sources are
// layered, later ones winning: built-in defaults, the user's
// liveout.toml, LIVEOUT_* environment variables and command line
// overrides.
package config
