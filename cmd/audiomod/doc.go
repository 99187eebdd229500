// Package main hosts the audiomod CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the three-stage pipeline (initialize,
// organize, convert), exposes each stage as a standalone command, and adds
// configuration scaffolding plus an external-binary check. It centralizes
// module-root resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
