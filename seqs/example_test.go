package seqs_test

import (
	"fmt"
	"slices"
	"strconv"

	"zipseq/seqs"
)

func ExampleZip() {
	numbers := slices.Values([]int{1, 2, 3})
	letters := slices.Values([]string{"A", "B", "C", "D"})

	// Pair elements up; the unmatched "D" is dropped
	pairs := seqs.Zip(numbers, letters, func(n int, s string) string {
		return strconv.Itoa(n) + s
	})

	for p := range pairs {
		fmt.Println(p)
	}

	// Output:
	// 1A
	// 2B
	// 3C
}

func ExampleZipLongest() {
	numbers := slices.Values([]int{1, 2, 3})
	letters := slices.Values([]string{"A", "B", "C", "D"})

	// The shorter side is padded with its zero value (0 here)
	pairs := seqs.ZipLongest(numbers, letters, func(n int, s string) string {
		return strconv.Itoa(n) + s
	})

	for p := range pairs {
		fmt.Println(p)
	}

	// Output:
	// 1A
	// 2B
	// 3C
	// 0D
}

func ExampleEquiZip() {
	numbers := slices.Values([]int{1, 2, 3})
	letters := slices.Values([]string{"A", "B", "C", "D"})

	pairs := seqs.EquiZip(numbers, letters, func(n int, s string) string {
		return strconv.Itoa(n) + s
	})

	for p, err := range pairs {
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Println(p)
	}

	// Output:
	// 1A
	// 2B
	// 3C
	// error: first sequence ran out before second
}
