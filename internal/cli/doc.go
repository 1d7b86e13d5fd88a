// Package cli implements the property-sugar command line: flag parsing,
// configuration resolution and the runner that processes source files in
// parallel.
package cli
