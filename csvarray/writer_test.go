package csvarray_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/csvio"
	"github.com/katalvlaran/gridcsv/dense"
	"github.com/katalvlaran/gridcsv/fields"
)

func TestWriteRowMajor(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, "1,2,3\n4,5,6\n", writeString(t, a))

	f := mustDense(t, [][]float64{{0.5, -2}, {1e21, 3}})
	assert.Equal(t, "0.5,-2\n1e+21,3\n", writeString(t, f))
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()
	sink := &failingSink{failAt: -1}
	a, err := dense.New[int](0, 4)
	require.NoError(t, err)

	require.NoError(t, csvarray.Write(sink, a, fields.For[int]()))
	assert.Empty(t, sink.written)
	assert.Equal(t, 1, sink.flushes, "flush is called even for zero rows")
}

func TestWriteFlushesOnce(t *testing.T) {
	t.Parallel()
	sink := &failingSink{failAt: -1}
	a := mustDense(t, [][]uint16{{1}, {2}, {3}})

	require.NoError(t, csvarray.Write(sink, a, fields.Codec[uint16]{}))
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, sink.written)
	assert.Equal(t, 1, sink.flushes)
}

func TestWriteSinkFailureAborts(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk full")
	sink := &failingSink{failAt: 1, err: boom}
	a := mustDense(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	err := csvarray.Write(sink, a, fields.For[int]())
	require.ErrorIs(t, err, csvarray.ErrSink)
	require.ErrorIs(t, err, boom)

	var we *csvarray.WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 1, we.Row)
	assert.Equal(t, [][]string{{"1", "2"}}, sink.written, "rows before the failure stay in the sink")
	assert.Equal(t, 0, sink.flushes, "no flush after a failed row")

	kind, ok := csvarray.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, csvarray.KindSink, kind)
}

func TestWriteFlushFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("broken pipe")
	sink := &failingSink{failAt: -1, failFlush: true, err: boom}

	err := csvarray.Write(sink, mustDense(t, [][]int{{7}}), fields.For[int]())
	var we *csvarray.WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, -1, we.Row)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "csvarray: flush: broken pipe", err.Error())
}

func TestWriteNil(t *testing.T) {
	t.Parallel()
	sink := &failingSink{failAt: -1}
	err := csvarray.Write[int](sink, nil, fields.For[int]())
	require.ErrorIs(t, err, dense.ErrNilMatrix)
	assert.Zero(t, sink.flushes)

	assert.Panics(t, func() { csvarray.NewWriter[int](nil, fields.For[int]()) })
}

// TestWriteZeroWidth refuses rows that would come back as nothing.
func TestWriteZeroWidth(t *testing.T) {
	t.Parallel()
	sink := &failingSink{failAt: -1}
	obs := &recorder{}
	a, err := dense.New[int](3, 0)
	require.NoError(t, err)

	err = csvarray.Write(sink, a, fields.For[int](), csvarray.WithObserver(obs))
	require.ErrorIs(t, err, csvarray.ErrZeroWidth)
	assert.NotErrorIs(t, err, csvarray.ErrSink)
	assert.Empty(t, sink.written)
	assert.Zero(t, sink.flushes, "the sink is not touched")
	assert.Empty(t, obs.seen)

	empty, err := dense.New[int](0, 0)
	require.NoError(t, err)
	require.NoError(t, csvarray.Write(sink, empty, fields.For[int]()))
	assert.Equal(t, 1, sink.flushes)
}

func TestWriteDoesNotModifyArray(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int8{{-1, 2}, {3, -4}})
	before := a.Clone()
	_ = writeString(t, a)
	assert.True(t, before.Equal(a))
}

func TestWriterReuse(t *testing.T) {
	t.Parallel()
	sink := &failingSink{failAt: -1}
	w := csvarray.NewWriter(sink, fields.For[int]())

	require.NoError(t, w.Write(mustDense(t, [][]int{{1, 2, 3}})))
	require.NoError(t, w.Write(mustDense(t, [][]int{{4}})))
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4"}}, sink.written)
	assert.Equal(t, 2, sink.flushes)
}

// TestRoundTrip reads back what Write produced, for several element types.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("float64", func(t *testing.T) {
		a := mustDense(t, [][]float64{{math.Pi, -0.1}, {math.MaxFloat64, math.SmallestNonzeroFloat64}})
		got, err := csvarray.ReadFixed(inMemory(writeString(t, a)), a.Shape(), fields.For[float64]())
		require.NoError(t, err)
		assert.True(t, a.Equal(got))
	})

	t.Run("float32", func(t *testing.T) {
		a := mustDense(t, [][]float32{{1.1, 2.2, 3.3}})
		got, err := csvarray.ReadDynamic(inMemory(writeString(t, a)), fields.For[float32]())
		require.NoError(t, err)
		assert.True(t, a.Equal(got))
	})

	t.Run("int64 extremes", func(t *testing.T) {
		a := mustDense(t, [][]int64{{math.MinInt64, 0, math.MaxInt64}})
		got, err := csvarray.ReadDynamic(inMemory(writeString(t, a)), fields.For[int64]())
		require.NoError(t, err)
		assert.True(t, a.Equal(got))
	})

	t.Run("custom delimiter", func(t *testing.T) {
		a := mustDense(t, [][]uint32{{1, 2}, {3, 4}})
		var buf bytes.Buffer
		w := csvio.NewWriter(&buf, csvio.WithComma(';'), csvio.WithCRLF())
		require.NoError(t, csvarray.Write(w, a, fields.For[uint32]()))
		assert.Equal(t, "1;2\r\n3;4\r\n", buf.String())

		got, err := csvarray.ReadFixed(csvio.NewReader(&buf, csvio.WithComma(';')), a.Shape(), fields.For[uint32]())
		require.NoError(t, err)
		assert.True(t, a.Equal(got))
	})
}
