// Package strtab provides in-memory compaction for bundle localization
// value tables via a small trained dictionary of repeated substrings.
//
// # Overview
//
// A localized strings-file bundle (corestr/bundle) holds many short,
// highly repetitive values (shared punctuation, shared word stems across
// locales, repeated format fragments). strtab learns up to 255 "symbols"
// (byte substrings, 2-8 bytes each) from a representative sample of a
// bundle's values and rewrites each value as a stream of literal runs
// interleaved with single-byte symbol references, so bundle.Table can
// keep a whole strings file resident without re-reading it for every
// lookup.
//
// # When to Use strtab
//
// strtab is suited to compacting small, highly repetitive natural-
// language value sets: localization tables, short label/message sets,
// and similar collections where the same words and phrases recur across
// many entries.
//
// # When NOT to Use strtab
//
// strtab is not a general-purpose compressor: it has no entropy coding,
// no windowed backreferences, and no support for binary or high-entropy
// data. For large documents or arbitrary binary payloads, use gzip or
// zstd instead.
//
// # Basic Usage
//
//	tbl := strtab.TrainStrings([]string{"Cancel", "Cancelar"})
//	compact := tbl.EncodeAll([]byte("Cancel"))
//	original := tbl.DecodeAll(compact)
//
// # Performance Characteristics
//
// Training is O(n*k) in the total sample byte length n and the maximum
// symbol length k (8). Encoding and decoding are both linear in the
// output size: encoding does a bounded longest-match probe per input
// position, decoding is a single pass with one table lookup per token.
package strtab
