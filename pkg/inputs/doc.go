// Package inputs reads everything a compile needs from the filesystem or
// standard input and writes the rendered result back out. It is the only
// package that touches files; merge and render work on in-memory values.
package inputs
