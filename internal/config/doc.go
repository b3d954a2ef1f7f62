// Package config loads the optional YAML configuration file.
//
// The file sets run-wide defaults that command-line flags may override:
//
//	output: contacts.vcf   # "-" (the default) writes to stdout
//	ringtone: Marimba      # default ringtone for cards without one
//	verbose: false         # debug tracing on stderr
//	uid: true              # emit a UID derived from each entry's DN
//
// Unknown keys are rejected so typos do not go unnoticed.
package config
