package seqs

import (
	"errors"
	"fmt"
	"iter"
)

// Length-mismatch errors reported by [EquiZip]. The message names the
// direction: which input ran out while the other still had elements.
var (
	ErrFirstShorter  = errors.New("first sequence ran out before second")
	ErrSecondShorter = errors.New("second sequence ran out before first")
)

// imbalancePolicy selects what the lockstep core does when one input is
// exhausted before the other.
type imbalancePolicy int

const (
	truncateShorter imbalancePolicy = iota // stop at the shorter input
	padShorter                             // zero-fill the exhausted side
	failOnImbalance                        // yield a length-mismatch error
)

// Zip pairs the elements of first and second position by position and
// yields combine(a, b) for each pair. Iteration stops at the shorter input;
// surplus elements of the longer one are never pulled past the first
// imbalance. Panics if any argument is nil.
func Zip[A, B, R any](first iter.Seq[A], second iter.Seq[B], combine func(A, B) R) iter.Seq[R] {
	checkArgs("Zip", first, second, combine)
	return dropErr(lockstep(truncateShorter, first, second, combine))
}

// EquiZip is like [Zip] but requires both inputs to have the same length.
// The result yields (combined, nil) pairs; if one input runs out before the
// other, the sequence yields one final (zero, err) element — err is
// [ErrFirstShorter] or [ErrSecondShorter] depending on which side ran out —
// and then terminates. The mismatch is detected lazily, so all min(m, n)
// combined elements are yielded before the error. Panics if any argument is
// nil.
func EquiZip[A, B, R any](first iter.Seq[A], second iter.Seq[B], combine func(A, B) R) iter.Seq2[R, error] {
	checkArgs("EquiZip", first, second, combine)
	return lockstep(failOnImbalance, first, second, combine)
}

// ZipLongest is like [Zip] but iterates to the longer input: once one side
// is exhausted, combine receives that side's zero value for every remaining
// element of the other. Panics if any argument is nil.
func ZipLongest[A, B, R any](first iter.Seq[A], second iter.Seq[B], combine func(A, B) R) iter.Seq[R] {
	checkArgs("ZipLongest", first, second, combine)
	return dropErr(lockstep(padShorter, first, second, combine))
}

// lockstep advances both inputs one step per produced element and applies
// the policy once either side runs out. Only the failOnImbalance policy can
// put an error on the wire; after that error the sequence terminates even
// if the consumer asks for more. Both pull cursors are stopped on every
// exit path: exhaustion, early consumer stop, and a panicking combine.
func lockstep[A, B, R any](policy imbalancePolicy, first iter.Seq[A], second iter.Seq[B], combine func(A, B) R) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		nextA, stopA := iter.Pull(first)
		defer stopA()
		nextB, stopB := iter.Pull(second)
		defer stopB()

		for {
			a, okA := nextA()
			if !okA {
				b, okB := nextB()
				if !okB {
					return // both ended together
				}
				switch policy {
				case failOnImbalance:
					var zero R
					yield(zero, ErrFirstShorter)
				case padShorter:
					var padA A
					for okB {
						if !yield(combine(padA, b), nil) {
							return
						}
						b, okB = nextB()
					}
				}
				return
			}

			b, okB := nextB()
			if !okB {
				switch policy {
				case failOnImbalance:
					var zero R
					yield(zero, ErrSecondShorter)
				case padShorter:
					var padB B
					for okA {
						if !yield(combine(a, padB), nil) {
							return
						}
						a, okA = nextA()
					}
				}
				return
			}

			if !yield(combine(a, b), nil) {
				return
			}
		}
	}
}

// dropErr strips the always-nil error slot from a lockstep sequence run
// under a non-failing policy.
func dropErr[R any](seq iter.Seq2[R, error]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// checkArgs rejects nil arguments up front, before any cursor is acquired.
func checkArgs[A, B, R any](fn string, first iter.Seq[A], second iter.Seq[B], combine func(A, B) R) {
	switch {
	case first == nil:
		panic(fmt.Sprintf("seqs: %s: first must not be nil", fn))
	case second == nil:
		panic(fmt.Sprintf("seqs: %s: second must not be nil", fn))
	case combine == nil:
		panic(fmt.Sprintf("seqs: %s: combine must not be nil", fn))
	}
}
