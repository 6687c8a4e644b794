// Package lvbio is a small toolkit for the letter layer of biological
// sequences: which alphabets exist, how many bits a symbol needs, and how
// codes turn into ASCII and back.
//
// 🚀 What is lvbio?
//
//	A pure-Go, zero-allocation encoding layer that packed storage, file
//	parsers and alignment code sit on top of:
//		• Alphabets: DNA (2 bit), DNA+N (4 bit), DNA IUPAC (4 bit), protein (8 bit)
//		• Traits: compile-time constants plus a runtime BitsPerSymbol query
//		• Codec: table-driven code ↔ letter conversion, one lookup per symbol
//		• Bulk: range conversion into caller-owned buffers or any Storer
//		• Views: lazy, restartable character/symbol views over any Indexer
//
// ✨ Why choose lvbio?
//
//   - Hot-path friendly – alphabet chosen once per call, no per-symbol dispatch
//   - Total decoding – unknown bytes fold to a documented sentinel, never an error
//   - Generic sources – slices, packed words or mmapped buffers via seqview
//   - Concurrency-safe – no mutable state; disjoint writers scale freely
//
// Packages:
//
//	alphabet/ — Kind, Traits, BitsPerSymbol, Codec, bulk and lazy conversion
//	seqview/  — Indexer/Storer contracts, Slice adapter, Mapped lazy views
//
// Quick example:
//
//	c := alphabet.DNACodec
//	c.EncodeString([]uint8{0, 1, 2, 3, 0}) // "ACGTA"
//
//	go get github.com/katalvlaran/lvbio
package lvbio
