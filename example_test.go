package hll

import (
	"fmt"
	"strconv"
)

// A simple walkthrough on how to use Hll.
func Example() {
	const (
		p           = 14 // 2^14 registers, relative standard error around 0.8%
		numToInsert = 1000000
	)

	hll, err := NewHll(p, "sha1")
	if err != nil {
		panic(err)
	}

	// For this example, our inputs will just be strings, e.g. "1", "2"
	for i := 0; i < numToInsert; i++ {
		hll.AddString(strconv.Itoa(i))
	}

	// Duplicates do not affect the cardinality. The following loop has no effect.
	for i := 0; i < 10000; i++ {
		hll.AddString("1")
	}

	// We inserted 1M unique elements, the cardinality should be roughly 1M.
	fmt.Printf("%d\n", hll.Cardinality())
	// Output: 1008083
}

// Shards of a stream can be counted independently, for example one sketch per goroutine,
// and merged afterwards into the sketch of the whole stream.
func Example_merge() {
	even, _ := NewHll(14, "sha1")
	odd, _ := NewHll(14, "sha1")

	for i := 0; i < 100000; i++ {
		user := fmt.Sprintf("user-%d", i)
		if i%2 == 0 {
			even.AddString(user)
		} else {
			odd.AddString(user)
		}
	}

	all, err := even.Merge(odd)
	if err != nil {
		panic(err)
	}

	fmt.Println(even.Cardinality(), odd.Cardinality(), all.Cardinality())
	// Output: 50442 50244 100855
}
