// Package project locates and creates the project descriptor that decides
// whether this module runs standalone or as part of a larger project.
//
// The descriptor's content is owned by the surrounding project tooling and is
// opaque here beyond existence and location. Candidate probing is kept as a
// pure candidate list plus a thin filesystem check so tests can exercise the
// search order directly.
package project
