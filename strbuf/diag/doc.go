// Package diag carries the advisory diagnostics raised by strbuf buffers:
// truncation on overflow, rejected mutations and out-of-range reads.
//
// Buffers never write to an output stream themselves. They hand a
// Diagnostic to a Sink, which by default logs a console line to stderr via
// zerolog. Reporting never changes the outcome of the operation that
// raised it.
package diag
