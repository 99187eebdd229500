// Package vgmstream wraps the external stream conversion executable behind a
// narrow client interface.
//
// The tool is treated as a black box: any executable that reads one input
// file, writes one converted output file, and exits zero on success is
// substitutable. Prefer this package over ad-hoc exec.Command usage when
// converting streams so tests can swap in fakes.
package vgmstream
