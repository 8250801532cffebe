package csvarray_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/csvio"
	"github.com/katalvlaran/gridcsv/dense"
	"github.com/katalvlaran/gridcsv/fields"
)

// benchSizes are the square array sizes to benchmark.
var benchSizes = []int{16, 128, 512}

// sink defeats dead-code elimination.
var sinkA *dense.Dense[float64]

// randomCSV renders an n×n array of deterministic random floats.
func randomCSV(b *testing.B, n int) string {
	b.Helper()
	rng := rand.New(rand.NewSource(1337))
	a, err := dense.New[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := range a.Data() {
		a.Data()[i] = rng.NormFloat64()
	}
	var buf bytes.Buffer
	if err = csvarray.Write(csvio.NewWriter(&buf), a, fields.For[float64]()); err != nil {
		b.Fatal(err)
	}
	return buf.String()
}

func BenchmarkReadFixed(b *testing.B) {
	b.ReportAllocs()
	codec := fields.For[float64]()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			input := randomCSV(b, n)
			shape := dense.Shape{Rows: n, Cols: n}
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				src := csvio.NewReader(strings.NewReader(input), csvio.WithReuseRecord())
				a, err := csvarray.ReadFixed(src, shape, codec)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = a
			}
		})
	}
}

func BenchmarkReadDynamic(b *testing.B) {
	b.ReportAllocs()
	codec := fields.For[float64]()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			input := randomCSV(b, n)
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				src := csvio.NewReader(strings.NewReader(input), csvio.WithReuseRecord())
				a, err := csvarray.ReadDynamic(src, codec)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = a
			}
		})
	}
}

func BenchmarkWrite(b *testing.B) {
	b.ReportAllocs()
	codec := fields.For[float64]()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := csvarray.ReadDynamic(csvio.NewReader(strings.NewReader(randomCSV(b, n))), codec)
			if err != nil {
				b.Fatal(err)
			}
			var buf bytes.Buffer
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Reset()
				if err = csvarray.Write(csvio.NewWriter(&buf), a, codec); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
