// Package transform defines the whole-tree rewrite abstraction and the
// combinators for building rewrite pipelines.
//
// A transform is a Func: it takes a tree, may block on the context, and
// returns a tree or an error. Combinators are pure higher-order builders
// over Func; they are independent of the plugin manager and are typically
// used to pre-process plugins before registration:
//
//	fn := transform.Chain(
//	    transform.Retry(expand, 3),
//	    transform.When(hasCodeBlocks, highlight),
//	    transform.Timed(layout, "layout", transform.SlogSink(logger)),
//	)
//
// Chain, When, Retry, Memoize, Tap and Timed execute strictly one step at
// a time. Parallel and Map are the only sources of concurrent in-flight
// transforms; when branches share a tree they must either be read-only or
// touch disjoint node ids, since the arena carries no lock discipline.
//
// No cancellation primitive exists here: once begun, a transform runs to
// completion or failure. A caller wanting a deadline must race the
// transform against an external timer and discard the loser.
package transform
