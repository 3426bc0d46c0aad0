// Package app wires the vnat command-line tool.
//
// It loads Config from an optional yaml file, builds the zap logger and
// exposes App, a thin facade over package nat that refuses values whose
// trees would be too large to build and logs what it does.
package app
