/*
Package speculative provides functions for expressing parallel
algorithms, similar to the functions in package parallel, except that
the implementations here terminate early when they can.

And and Or terminate early if the final return value is known from the
left half of their predicates (if the predicates evaluated in the
invoking goroutine return false for And, or true for Or); a decisive
result from the right half is only acted on once the left half has
finished.

Additionally, both of these functions also handle panics, similar to
the functions in package parallel. However, panics may not propagate
to the invoking goroutine in case they terminate early because of a
known return value. See the documentation of the functions for more
precise details of the semantics.

Neither function stops the execution of invoked predicates that may
still be running in parallel in case of early termination. To ensure
that compute resources are freed up in such cases, user programs need
to use some other safe form of communication to gracefully stop their
execution, for example the cancelation feature of the context package
of Go's standard library. (Any such additional communication is likely
to add additional performance overhead, which is why this is not done
by default.)
*/
package speculative

import "sync"

// A Predicate is a function that returns a bool. Used as the element
// type of And's and Or's fork/join argument list.
type Predicate func() bool

/*
And receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and And returns true
if all of them return true, and false otherwise. When the left half of
the predicates yields false, And returns false without waiting for the
right half to terminate; when only the right half yields false, And
first waits for the left half.

If one or more predicates panic, the corresponding goroutines recover
the panics, and And may eventually panic with the left-most recovered
panic value. If both panics occur and false values are returned, then
the left-most of these events takes precedence.
*/
func And(predicates ...Predicate) (result bool) {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = recover()
				wg.Done()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = recover()
				wg.Done()
			}()
			b1 = And(predicates[half:]...)
		}()
		b0 = And(predicates[:half]...)
	}
	if !b0 {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

/*
Or receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and Or returns false
if all of them return false, and true otherwise. When the left half of
the predicates yields true, Or returns true without waiting for the
right half to terminate; when only the right half yields true, Or
first waits for the left half.

If one or more predicates panic, the corresponding goroutines recover
the panics, and Or may eventually panic with the left-most recovered
panic value. If both panics occur and true values are returned, then
the left-most of these events takes precedence.
*/
func Or(predicates ...Predicate) (result bool) {
	switch len(predicates) {
	case 0:
		return false
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = recover()
				wg.Done()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = recover()
				wg.Done()
			}()
			b1 = Or(predicates[half:]...)
		}()
		b0 = Or(predicates[:half]...)
	}
	if b0 {
		return true
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}
