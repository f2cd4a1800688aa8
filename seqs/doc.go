/*
Package seqs composes lazy sequences: chains of transformations over ordered and keyed
collections where nothing runs until the result is consumed, and consumption may stop early
without finishing the rest of the pipeline.

Every sequence implements a single primitive, [Sequence.Each]. A visitor returns [Continue] to
ask for more or [Stop] to end the traversal; each derived sequence returns [Stop] to its own
caller in turn, which is what makes [Contains], [EqualsFunc], [Take] and [Find] short-circuit
all the way up the chain.

# Capabilities

Sequences implement extra interfaces selectively:

  - [RandomAccess]: O(1) Get and Len. [FromSlice], [GenerateN], [Map] over a random-access
    parent and [Reverse] of one keep it, and [Iter] walks them by position.
  - [Buffering]: the sequence must see its whole parent first ([SortFunc], [Shuffle],
    [ReversedSequence]). [GroupBy] and [CountBy] buffer the same way but yield key/value pairs.

Set-like operations ([Uniq], [Without], [Intersection], [Union]) stream their parent and keep
membership in a kind-aware value set, so the int 1 and the string "1" never collide.

# Keyed sequences

[KeyedSequence] yields key/value pairs. [FromMap] visits keys in ascending order; [Pick],
[Omit], [Invert] and [MapValues] stream; [ToPairs] and [ToMap] materialize.

# Deferred traversal

[Async] replays a sequence one element per task on a cooperative scheduler (package tasks),
optionally spacing deliveries by a delay:

	h := seqs.Async(seqs.Of(1, 2, 3), seqs.WithDelay(100*time.Millisecond)).
		Each(func(v int) seqs.Signal {
			fmt.Println(v)
			return seqs.Continue
		})
	err := h.Wait(ctx)

# Errors

Comparators, predicates and generators that panic propagate the panic to whoever consumed the
sequence. Iterators report protocol misuse with [ErrIteratorNotStarted] and
[ErrIteratorExhausted]. Unbounded sequences ([Generate], [FromEvents]) only end when the
consumer stops them.
*/
package seqs
