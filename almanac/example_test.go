package almanac_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/seedmap/almanac"
)

func ExampleParse() {
	input := `seeds: 79 14

seed-to-soil map:
50 98 2
52 50 48

soil-to-location map:
0 15 37
37 52 2
39 0 15`

	a, err := almanac.Parse(context.Background(), strings.Split(input, "\n"))
	if err != nil {
		fmt.Println(err)

		return
	}

	lowest, err := a.Lowest()
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(lowest)
	// Output: 53
}

func ExampleTable_Trace() {
	tail, _ := almanac.BuildTable("soil-to-water", []string{"0 81 1"}, nil)
	head, _ := almanac.BuildTable("seed-to-soil", []string{"52 50 48"}, tail)

	for _, step := range head.Trace(79) {
		fmt.Printf("%s %d -> %d\n", step.Table, step.In, step.Out)
	}
	// Output:
	// seed-to-soil 79 -> 81
	// soil-to-water 81 -> 0
}
