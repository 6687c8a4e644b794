// Package seqview provides generic, position-addressable sequences and
// lazy, non-copying views over them.
//
// 🚀 What is a view?
//
//	A view wraps a source sequence and a pure per-element function. Nothing
//	is computed up front: the function runs on each At(i), so a view over a
//	gigabyte of packed symbols costs nothing until it is read.
//
// ✨ Key features:
//   - Indexer / Storer — minimal read and write contracts any container can meet
//     (plain slices, packed bit-level storage, memory-mapped buffers)
//   - Slice           — zero-cost []T adapter implementing both contracts
//   - Mapped          — read-only, restartable mapped view (Map, Shift, Values)
//   - Collect         — materialize the first n values of any Indexer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvbio/seqview"
//
//	src := seqview.Slice[int]{1, 2, 3}
//	sq := seqview.Map[int, int](src, func(x int) int { return x * x })
//	fmt.Println(sq.At(2)) // 9
//
// Concurrency:
//
//	Views hold no mutable state. Any number of goroutines may read the same
//	view, or independent copies of it, as long as the source is not mutated
//	concurrently.
//
// Bounds:
//
//	Views perform no bounds checking of their own. Reading past the logical
//	end of the source is the caller's responsibility; for a Slice source it
//	panics exactly like the underlying slice index would.
package seqview
