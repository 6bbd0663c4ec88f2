// Package debug provides the toolkit's shared debug logger.
//
// Logging is a no-op until a logger is installed with [SetLogger] or a file is
// opened with [Init]. When the TK_DEBUG environment variable is set to a file
// path, debug messages are appended to that file on first use.
package debug
