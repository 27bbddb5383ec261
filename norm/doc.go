// Package norm is the normalization engine: it validates a normalizer's
// requirements against a frame, recursively partitions the frame by the
// normalizer's grouping columns, computes group-scoped constants, and
// applies the normalizer's transform at the leaves.
//
// The moving parts:
//
//   - Transform: the per-group leaf computation, one type per normalizer.
//   - Action: a function invoked on entering a group during partitioning;
//     it writes group-scoped constants used by the transform.
//   - Constants: a single mutable map threaded BY REFERENCE through the
//     whole recursion. Sibling groups reuse the same map, each overwriting
//     the previous sibling's entries immediately before its own transform
//     runs. Several built-in normalizers depend on this exact semantic;
//     do not give each branch its own scope.
//   - Base: the common Normalize pipeline (merge options, resolve
//     formants, default keywords, validate, pre-hook, partition,
//     post-hook) shared by every built-in normalizer.
//   - Registry: an explicit name→constructor index with case-insensitive
//     prefix lookup; Ref models the string / constructor / instance forms
//     a method argument can take.
//
// A Base keeps per-call option state on itself, so a single normalizer
// instance must not be used from multiple goroutines at once; construct
// one instance per goroutine instead.
package norm
