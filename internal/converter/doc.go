// Package converter walks the organized source tree and converts every
// matching stream file through the external tool, mirroring the relative
// directory structure under the target tree.
//
// An existing target file is taken as proof the conversion already happened
// and is skipped; that file-existence check is the only caching policy. A
// failed conversion is recorded and the batch continues, so one corrupt
// stream never blocks the rest.
package converter
