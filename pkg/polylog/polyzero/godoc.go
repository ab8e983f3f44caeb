// Package polyzero provides a polylog.Logger implementation backed by zerolog.
// As the polylog interface mirrors that of zerolog, this package is a thin
// wrapper around the zerolog package and only maps the subset of its API the
// deployer CLIs use.
package polyzero
