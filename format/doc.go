// Package format dispatches parsing and writing by file extension.
//
// A process-wide registry maps a lowercase extension ("json", "xjs") to a
// parser and writer pair. [AutoParse] and [AutoWrite] look up a file's
// extension and delegate to the registered pair, falling back to the
// default extension when none is present. [Config] exposes the writer
// options as CLI flags for host commands such as xjsfmt.
package format
