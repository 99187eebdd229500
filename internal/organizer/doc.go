// Package organizer reclassifies the immediate subdirectories of the source
// tree into the EN and Global locale buckets.
//
// Blacklisted locale directories stay in place, configured global directories
// move under Global, and everything else defaults to EN. Buckets are created
// on demand, already-bucketed trees are recognized and left alone so repeated
// runs are idempotent, and a same-named directory at the destination aborts
// the run rather than merging silently.
package organizer
