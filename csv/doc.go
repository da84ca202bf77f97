// Package csv is the I/O shell around the engine: it decodes transaction
// records from CSV input and encodes account snapshots as CSV output.
//
// Decoding is fail-fast: the first malformed record aborts the whole run with
// a ParseError. Business-rule rejections are not the shell's concern; the
// engine absorbs those silently.
package csv
