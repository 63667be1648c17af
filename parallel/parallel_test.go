package parallel_test

import (
	"fmt"
	"runtime"

	"github.com/shreyasbalaji/parstl/parallel"
)

func ExampleDo() {
	var fib func(int) int

	fib = func(n int) int {
		if n < 0 {
			panic("invalid argument")
		}
		if n < 2 {
			return n
		}
		var n1, n2 int
		if n < 20 {
			n1, n2 = fib(n-1), fib(n-2)
		} else {
			parallel.Do(
				func() { n1 = fib(n - 1) },
				func() { n2 = fib(n - 2) },
			)
		}
		return n1 + n2
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Println(r)
			}
		}()
		fmt.Println(fib(-1))
	}()

	fmt.Println(fib(20))

	// Output:
	// invalid argument
	// 6765
}

func ExampleReduceSum() {
	numDivisors := func(n int) int {
		return parallel.ReduceSum(
			1, n+1, runtime.GOMAXPROCS(0),
			func(i int) int {
				if (n % i) == 0 {
					return 1
				}
				return 0
			},
		)
	}

	fmt.Println(numDivisors(12))

	// Output:
	// 6
}

func ExampleReduceSum_float64() {
	sumFloat64s := func(f []float64) float64 {
		return parallel.ReduceSum(
			0, len(f), runtime.GOMAXPROCS(0),
			func(i int) float64 { return f[i] },
		)
	}

	fmt.Println(sumFloat64s([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	// Output:
	// 55
}

func ExampleReduceExtremum() {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6}
	index, _ := parallel.ReduceExtremum(
		0, len(values), runtime.GOMAXPROCS(0),
		func(i int) int { return values[i] },
		func(candidate, current int) bool { return candidate > current },
	)

	fmt.Println(index, values[index])

	// Output:
	// 5 9
}
