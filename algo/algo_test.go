package algo_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/shreyasbalaji/parstl/algo"
	"github.com/shreyasbalaji/parstl/sequential"
)

func randomFloats(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = r.Float64()
	}
	return data
}

func randomInts(n, bound int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(bound)
	}
	return data
}

func TestTransform(t *testing.T) {
	in := randomFloats(10000, 1)
	out := make([]float64, len(in))
	algo.Transform(in, out, func(v float64) float64 { return v * 2 })
	for i, v := range in {
		if out[i] != v*2 {
			t.Fatalf("Transform at %d: got %v, want %v", i, out[i], v*2)
		}
	}
}

func TestTransformAliasedInPlace(t *testing.T) {
	data := randomInts(5000, 1000, 2)
	want := make([]int, len(data))
	for i, v := range data {
		want[i] = v + 1
	}
	algo.Transform(data, data, func(v int) int { return v + 1 })
	if !reflect.DeepEqual(data, want) {
		t.Fatal("in-place Transform disagreed with the expected element-wise increment")
	}
}

func TestCountAgreesWithSequential(t *testing.T) {
	data := randomInts(20000, 50, 3)
	for _, value := range []int{0, 1, 25, 49} {
		got := algo.Count(data, value)
		want := sequential.Count(data, value)
		if got != want {
			t.Errorf("Count(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestCountIfAgreesWithSequential(t *testing.T) {
	data := randomInts(20000, 1000, 4)
	pred := func(v int) bool { return v%7 == 0 }
	if got, want := algo.CountIf(data, pred), sequential.CountIf(data, pred); got != want {
		t.Errorf("CountIf = %d, want %d", got, want)
	}
}

func TestMinElementWithinTolerance(t *testing.T) {
	data := randomFloats(600000, 5)
	less := func(a, b float64) bool { return a < b }
	index, ok := algo.MinElement(data, less)
	if !ok {
		t.Fatal("MinElement reported ok=false on a non-empty slice")
	}
	want := floats.Min(data)
	if !floats.EqualWithinAbsOrRel(data[index], want, 1e-9, 1e-9) {
		t.Errorf("MinElement = %v, want within tolerance of %v", data[index], want)
	}
}

func TestMaxElementWithinTolerance(t *testing.T) {
	data := randomFloats(600000, 6)
	less := func(a, b float64) bool { return a < b }
	index, ok := algo.MaxElement(data, less)
	if !ok {
		t.Fatal("MaxElement reported ok=false on a non-empty slice")
	}
	want := floats.Max(data)
	if !floats.EqualWithinAbsOrRel(data[index], want, 1e-9, 1e-9) {
		t.Errorf("MaxElement = %v, want within tolerance of %v", data[index], want)
	}
}

func TestExtremumTiesBreakToLowestIndex(t *testing.T) {
	data := []int{3, 1, 1, 1, 2}
	less := func(a, b int) bool { return a < b }
	if index, ok := algo.MinElement(data, less); !ok || index != 1 {
		t.Errorf("MinElement with ties = (%d, %v), want (1, true)", index, ok)
	}
}

func TestSumAgreesWithSequential(t *testing.T) {
	ints := randomInts(50000, 1000, 7)
	if got, want := algo.Sum(ints), sequential.Sum(ints); got != want {
		t.Errorf("Sum(ints) = %d, want %d", got, want)
	}

	floatsData := randomFloats(50000, 8)
	got := algo.Sum(floatsData)
	want := sequential.Sum(floatsData)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Sum(floats) = %v, want approximately %v", got, want)
	}
}

func TestIsSorted(t *testing.T) {
	less := func(a, b int) bool { return a < b }
	sorted := randomInts(10000, 1000, 9)
	sequential.StableSort(sorted, less)
	if !algo.IsSorted(sorted, less) {
		t.Error("IsSorted should report true for a sorted slice above the grain-size cutoff")
	}
	sorted[5000], sorted[5001] = sorted[5001]+1000, sorted[5000]
	if algo.IsSorted(sorted, less) {
		t.Error("IsSorted should report false once the slice is perturbed")
	}
}

func TestFindAgreesWithSequential(t *testing.T) {
	data := randomInts(20000, 9000, 10)
	for value := 1; value < 9040; value += 20 {
		if got, want := algo.Find(data, value), sequential.Find(data, value); got != want {
			t.Errorf("Find(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestFind2AgreesWithSequential(t *testing.T) {
	data := randomInts(20000, 9000, 11)
	for value := 1; value < 9040; value += 20 {
		if got, want := algo.Find2(data, value), sequential.Find2(data, value); got != want {
			t.Errorf("Find2(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestRotateAgreesWithSequential(t *testing.T) {
	data := randomFloats(500000, 12)
	cutoffs := randomFloats(30, 13)
	for _, ratio := range cutoffs {
		mid := int(ratio * float64(len(data)))
		got := append([]float64(nil), data...)
		want := append([]float64(nil), data...)
		algo.Rotate(got, mid)
		sequential.Rotate(want, mid)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Rotate(mid=%d) disagreed with sequential.Rotate", mid)
		}
	}
}

func TestRotateInPlaceAgreesWithRotate(t *testing.T) {
	data := randomFloats(500000, 14)
	mid := len(data) / 3
	buffered := append([]float64(nil), data...)
	inplace := append([]float64(nil), data...)
	algo.Rotate(buffered, mid)
	algo.RotateInPlace(inplace, mid)
	if !reflect.DeepEqual(buffered, inplace) {
		t.Fatal("Rotate and RotateInPlace disagreed")
	}
}

func TestPartition(t *testing.T) {
	data := randomInts(200000, 1000, 15)
	pred := func(v int) bool { return v%2 == 0 }
	cutoff := algo.Partition(data, pred)
	for i := 0; i < cutoff; i++ {
		if !pred(data[i]) {
			t.Fatalf("index %d before cutoff %d does not satisfy predicate", i, cutoff)
		}
	}
	for i := cutoff; i < len(data); i++ {
		if pred(data[i]) {
			t.Fatalf("index %d at or after cutoff %d satisfies predicate", i, cutoff)
		}
	}
	if want := sequential.CountIf(randomInts(200000, 1000, 15), pred); cutoff != want {
		t.Errorf("Partition cutoff = %d, want %d matching elements", cutoff, want)
	}
}
