// Package pipeline sequences the initialize, organize, and convert stages.
//
// The runner holds a lock file in the module root so two invocations cannot
// interleave file moves, tags every run with a correlation ID, and stops at
// the first stage failure, wrapping it with the stage identity so callers can
// report exactly what broke.
package pipeline
