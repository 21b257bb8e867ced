/*
Package vector implements a persistent (immutable) indexed sequence,
modeled on Clojure's/Rich Hickey's bit-partitioned vector trie.

Every "mutation" (PushBack) returns a new Vector value and leaves its
receiver completely unobserved-changed: the new and old values share
every subtree that did not lie on the path affected by the update.
Vector values are cheap to copy (two integers and two pointers)
and safe to read concurrently from any number of goroutines without
coordination, because nodes are never mutated after they are reachable
from a published Vector.

Status

Core data-structure only: indexed read, amortized O(1) append, and a
random-access Cursor. There is no in-place mutation, no arbitrary
insertion or removal, no slicing, and no concatenation — see the
package-level Non-goals in the project's specification.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with the configured package key (default "pvector").
// See Configure / WithTraceKey.
func tracer() tracing.Trace {
	return tracing.Select(currentTraceKey())
}
