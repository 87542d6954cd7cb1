// Package cli parses the headless runner's command line, validates it and
// maps failures to process exit codes.
package cli
