package bselect_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/bselect"
)

func ExampleSelect() {
	names := []string{
		"Alice", "Bob", "Anna", "Alex", "Andrew",
		"Benjamin", "Carol", "David", "Amanda", "Aaron",
	}
	aNames, err := bselect.Select(slices.Values(names), bselect.HasPrefixFold("A"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Join(slices.Collect(aNames), ", "))
	// Output:
	// Aaron, Alex, Alice, Amanda, Andrew, Anna
}

func ExampleSelect_numbers() {
	seq, _ := bselect.Select(slices.Values([]int{10, 20, 30, 40, 50}), func(x int) bool {
		return x > 25
	})
	for x := range seq {
		fmt.Println(x)
	}
	// Output:
	// 30
	// 40
	// 50
}
