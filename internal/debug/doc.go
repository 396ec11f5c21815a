// Package debug provides optional file-based debug logging.
//
// When the FLIP_DEBUG environment variable is set to a file path, [Logger]
// returns a zap logger that appends debug-level entries to that file.
// Otherwise it returns a no-op logger.
package debug
