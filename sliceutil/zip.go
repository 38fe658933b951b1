// Package sliceutil provides eager, slice-in/slice-out counterparts to the
// lazy combinators in package seqs.
package sliceutil

import (
	"fmt"

	"zipseq/seqs"
)

// Zip combines a and b position by position into a new slice, truncated to
// the shorter input. Panics if combine is nil.
func Zip[A, B, R any](a []A, b []B, combine func(A, B) R) []R {
	mustCombine("Zip", combine)
	n := min(len(a), len(b))
	if n == 0 {
		return []R{}
	}

	res := make([]R, 0, n)
	for i := range n {
		res = append(res, combine(a[i], b[i]))
	}
	return res
}

// ZipLongest combines a and b position by position up to the longer input,
// substituting zero values for the exhausted side. Panics if combine is nil.
func ZipLongest[A, B, R any](a []A, b []B, combine func(A, B) R) []R {
	mustCombine("ZipLongest", combine)
	n := max(len(a), len(b))
	if n == 0 {
		return []R{}
	}

	var (
		zeroA A
		zeroB B
	)
	res := make([]R, 0, n)
	for i := range n {
		av, bv := zeroA, zeroB
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		res = append(res, combine(av, bv))
	}
	return res
}

// EquiZip combines a and b position by position and requires equal lengths.
// Lengths are known up front, so unlike [seqs.EquiZip] the mismatch is
// reported before any element is combined: (nil, [seqs.ErrFirstShorter]) when
// a is shorter, (nil, [seqs.ErrSecondShorter]) when b is. Panics if combine
// is nil.
func EquiZip[A, B, R any](a []A, b []B, combine func(A, B) R) ([]R, error) {
	mustCombine("EquiZip", combine)
	switch {
	case len(a) < len(b):
		return nil, seqs.ErrFirstShorter
	case len(a) > len(b):
		return nil, seqs.ErrSecondShorter
	}

	res := make([]R, 0, len(a))
	for i := range a {
		res = append(res, combine(a[i], b[i]))
	}
	return res, nil
}

// ZipToMap pairs keys with values, truncated to the shorter slice. Later
// duplicate keys overwrite earlier ones.
func ZipToMap[K comparable, V any](keys []K, values []V) map[K]V {
	n := min(len(keys), len(values))
	res := make(map[K]V, n)
	for i := range n {
		res[keys[i]] = values[i]
	}
	return res
}

func mustCombine[A, B, R any](fn string, combine func(A, B) R) {
	if combine == nil {
		panic(fmt.Sprintf("sliceutil: %s: combine must not be nil", fn))
	}
}
