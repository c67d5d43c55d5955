// Package strbuf provides byte strings for callers that cannot afford an
// unbounded managed string.
//
// There are three types:
//
//   - View is a read-only borrow of bytes it does not own. It is only valid
//     while its source is neither mutated nor released; keeping that
//     promise is up to the caller.
//   - Fixed owns a buffer whose capacity is set at construction and never
//     changes. Assign and Append keep what fits and report the rest as a
//     truncation; Replace refuses outright when the result would not fit.
//   - Growable owns a heap buffer and grows it before every mutation, so
//     its Assign, Append and Replace never truncate or fail for lack of room.
//
// Both owning types keep a zero byte after the last content byte at all
// times (see CString) and implement the Buffer interface. Code written
// against Buffer gets the growing behaviour when handed a Growable.
//
// Overflow, rejection and out-of-range reads are reported to a diag.Sink
// and otherwise signalled only through boolean results. None of the types
// are safe for concurrent mutation.
package strbuf
