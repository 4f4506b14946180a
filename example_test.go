package bisect_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/bisect"
)

func ExampleSet_Find() {
	ctx := context.Background()

	set, err := bisect.New([]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29})
	if err != nil {
		panic(err)
	}

	v, err := set.Find(ctx, 13)
	fmt.Println(v, err)

	_, err = set.Find(ctx, 4)
	fmt.Println(errors.Is(err, bisect.ErrNotFound))
	// Output:
	// 13 <nil>
	// true
}

func ExampleSet_Find_probeBudget() {
	ctx := context.Background()

	keys := make([]int, 1_000_000)
	for i := range keys {
		keys[i] = i + 1
	}

	set, err := bisect.New(keys, bisect.WithProbeBudget(3))
	if err != nil {
		panic(err)
	}

	_, err = set.Find(ctx, 1_000_001)

	var ex *bisect.ErrExhausted
	if errors.As(err, &ex) {
		fmt.Printf("gave up after %d of %d probes\n", ex.Probes, ex.Budget)
	}
	// Output:
	// gave up after 3 of 3 probes
}

func ExampleSet_Contains() {
	ctx := context.Background()

	set, err := bisect.New([]string{"ant", "bee", "cat", "dog"})
	if err != nil {
		panic(err)
	}

	ok, _ := set.Contains(ctx, "bee")
	fmt.Println(ok)
	// Output:
	// true
}
