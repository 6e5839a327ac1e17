// Package logging provides the logging interface shared by the coordinator and
// worker roles. It hides the zerolog backend behind a small field-based API.
package logging
