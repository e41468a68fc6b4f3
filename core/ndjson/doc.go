// Package ndjson provides streaming and record primitives for
// newline-delimited JSON curation.
//
// Design:
//   - Record is an order-preserving view of one object; untouched values
//     keep their raw encoding and round-trip byte-for-byte.
//   - ScanLines streams one line at a time; memory is bounded by a single
//     line, never by the stream.
//   - Malformed input is an error for the caller to treat as fatal; messy
//     values inside well-formed records are a transform concern.
package ndjson
