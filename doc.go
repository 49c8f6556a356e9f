// Package corestr implements the core of a foundational, allocator-aware,
// Unicode-capable string engine: a variable-representation string object
// (inline/heap/external, 8-bit/UTF-16, mutable/immutable), a growth
// policy, an immutable constructor funnel, a mutable resize engine,
// Unicode-correct comparison/search/folding/normalization/segmentation,
// representation-independent hashing, and a printf-style format engine.
//
// # Overview
//
// A String is either immutable (built once by a constructor and never
// mutated) or mutable (built empty or by copy, then grown via Append,
// Insert, Delete, Replace, ...). Internally it is 8-bit (one byte per
// character, interpreted in the process's eight-bit encoding) until a
// character outside that encoding is introduced, at which point it
// promotes to UTF-16 and never demotes back. Mutation always
// routes through the resize engine (changeSize/changeSizeMultiple), which
// reallocates or rearranges the backing buffer in place.
//
// # When to Use corestr
//
// corestr is useful wherever a codebase needs:
//   - Compact, allocator-pluggable Unicode string storage that avoids
//     always paying UTF-16's 2x memory cost for ASCII-heavy text
//   - Locale- and option-sensitive comparison/search that folds case,
//     diacritics, width, and numeric runs without allocating a
//     fully-folded copy of either operand
//   - A format engine with positional arguments, locale-aware numeric
//     formatting, and structured replacement metadata (for rich-text
//     rendering of formatted strings)
//
// # When NOT to Use corestr
//
// corestr is not a generic text-editor rope/piece-table (no O(log n)
// random-access mutation of gigabyte documents) and it is not a full CLDR
// locale/calendar implementation — it consumes a locale abstraction
// (corestr/locale) rather than reimplementing one.
//
// # Basic Usage
//
//	s := corestr.NewMutable(0)
//	s.AppendCString("caf")
//	s.AppendCharacters([]uint16{0x00E9}) // é fits the eight-bit range; s stays 8-bit
//
//	other := corestr.FromCString("café") // combining acute
//	eq := corestr.Compare(s, other, corestr.CompareOptions{DiacriticInsensitive: true}, locale.Current) == 0
//
//	out, meta, err := corestr.WithFormat(locale.Current, "%2$@ = %1$d", 42, corestr.FromCString("answer"))
//
// # Performance Characteristics
//
// Comparison and search open inline iteration over both operands and fold
// one scalar at a time — no intermediate fully-folded string is
// allocated.
// Hashing is O(min(L, 96)) thanks to a windowed fold over long strings.
package corestr
