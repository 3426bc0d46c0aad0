// Package commands defines the vnat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - build        Print the set tree of a number
//   - add          Add two numbers as set trees
//   - render       Print the diagram of a tree given in set notation
//   - value        Validate a tree given in set notation and print its value
//   - fingerprint  Print the structural digest of a number's tree
//   - encode       Print a number's tree as base64 msgpack
//   - decode       Read a base64 msgpack tree and print it
//   - stats        Print node count, depth and encoded size of a tree
//
// # Implementation
//
// The root command loads the config file, applies flag overrides and builds
// the logger and app context before any subcommand runs. Output goes to the
// command's stdout; logs go to stderr.
package commands
