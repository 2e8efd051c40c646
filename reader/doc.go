// Package reader implements the position-tracking character cursor that
// underlies the XJS tokenizer: read/peek/expect primitives, a capture
// buffer for slicing out raw text, and the shared sub-scanners for
// quoted strings, numbers, and comment bodies.
//
// A [Reader] tracks line and column the way the XJS source format expects:
// line and column advance on every character read, a '\n' resets the
// column, and column distance is counted in UTF-16 code units so that
// reported positions match what a JavaScript- or JVM-hosted implementation
// would report for the same input.
package reader
