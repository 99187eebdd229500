// Package language maps locale directory codes to display names.
//
// The source trees this tool processes keep localized audio in directories
// named after two-letter language codes (IT, ES, FR, ...). The organizer uses
// this table to report blacklisted locale directories in readable form.
package language
