// Package container provides wrapper types whose constant form differs from
// the Go value that holds them: options, either values, shared references,
// vectors, tuples and explicitly ordered maps and sets.
//
// Every type implements render.Nested, so its elements render with the
// registry rendering the wrapper, and render.Const, which uses the default
// registry. The protocol has no error return, so the methods use the render
// Must helpers; the render entry points recover those panics and report them
// as errors.
package container
