// Package services defines the shared error vocabulary and context helpers
// used across pipeline stages.
//
// Stage code tags failures with one of the exported sentinel errors via Wrap
// so callers can classify them with errors.Is without parsing messages. The
// context helpers carry the active stage name and run correlation ID so
// loggers can tag output uniformly.
package services
