// Package kmd decodes KMD dump files produced by ARM/Thumb assembler toolchains.
//
// A KMD document starts with a KMD tag line, followed by address/word/comment
// records, a blank line, a "Symbol Table: Labels" section header and the label
// records of the symbol table. Lines may end in LF or CRLF, mixed freely.
//
// Parse decodes a fully resident buffer in a single pass and fails on the
// first malformed construct. ParseParallel produces identical results by
// splitting the buffer into lines first and decoding them concurrently.
package kmd
