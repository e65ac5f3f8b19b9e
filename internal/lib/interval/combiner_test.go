package interval_test

import (
	"iter"
	"slices"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/interval"
)

func TestCombineIntervals(t *testing.T) {
	t.Run("merges meeting intervals", func(t *testing.T) {
		combined, err := interval.CombineIntervals(seq([2]int{1, 2}, [2]int{2, 3}))
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{1, 3}), slices.Collect(combined))
	})
	t.Run("merges unordered overlapping and nested intervals", func(t *testing.T) {
		combined, err := interval.CombineIntervals(seq(
			[2]int{10, 12}, [2]int{1, 5}, [2]int{2, 3}, [2]int{4, 7}, [2]int{11, 15},
		))
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{1, 7}, [2]int{10, 15}), slices.Collect(combined))
	})
	t.Run("absorbs single point intervals touching a neighbour", func(t *testing.T) {
		combined, err := interval.CombineIntervals(seq([2]int{3, 3}, [2]int{1, 3}, [2]int{5, 5}))
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{1, 3}, [2]int{5, 5}), slices.Collect(combined))
	})
	t.Run("returns empty for empty input", func(t *testing.T) {
		combined, err := interval.CombineIntervals(seq())
		assert.NoError(t, err)
		assert.Empty(t, slices.Collect(combined))
	})
	t.Run("returns error for nil input", func(t *testing.T) {
		combined, err := interval.CombineIntervals[time.Time](nil)
		assert.Nil(t, combined)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
	t.Run("returns the same intervals when already combined", func(t *testing.T) {
		input := list([2]int{1, 2}, [2]int{3, 5}, [2]int{8, 9})
		combined, err := interval.CombineIntervals(slices.Values(input))
		assert.NoError(t, err)
		assert.Equal(t, input, slices.Collect(combined))
	})
	t.Run("covers exactly the input points", func(t *testing.T) {
		inputs := [][][2]int{
			{{0, 4}, {2, 6}, {6, 8}, {12, 13}},
			{{5, 9}, {1, 2}, {1, 2}, {3, 4}, {4, 4}},
			{{0, 24}, {3, 5}, {20, 30}},
			{{7, 8}},
		}
		for _, in := range inputs {
			original := list(in...)
			combined, err := interval.CombineIntervals(slices.Values(original))
			assert.NoError(t, err)
			result := slices.Collect(combined)

			for _, ts := range samples(-1, 31) {
				assert.Equal(t, coveredAt(original, ts), coveredAt(result, ts), "at %s for %v", ts, in)
			}
			for k := 1; k < len(result); k++ {
				assert.True(t, result[k-1].End().Before(result[k].Start()))
			}
		}
	})
	t.Run("stops work once consumer stops", func(t *testing.T) {
		combined, err := interval.CombineIntervals(seq([2]int{1, 2}, [2]int{4, 5}, [2]int{7, 8}))
		assert.NoError(t, err)

		var firsts []interval.Interval[time.Time]
		for in := range combined {
			firsts = append(firsts, in)
			break
		}
		assert.Equal(t, list([2]int{1, 2}), firsts)
	})
}

func TestCombineOverlappingIntervals(t *testing.T) {
	t.Run("keeps meeting intervals apart", func(t *testing.T) {
		combined, err := interval.CombineOverlappingIntervals(seq([2]int{2, 3}, [2]int{1, 2}))
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{1, 2}, [2]int{2, 3}), slices.Collect(combined))
	})
	t.Run("merges strictly overlapping intervals", func(t *testing.T) {
		combined, err := interval.CombineOverlappingIntervals(seq([2]int{1, 4}, [2]int{3, 6}, [2]int{6, 7}))
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{1, 6}, [2]int{6, 7}), slices.Collect(combined))
	})
	t.Run("returns error for nil input", func(t *testing.T) {
		_, err := interval.CombineOverlappingIntervals[time.Time](nil)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
}

type booking struct {
	from, to civil.Date
}

func TestCombiner(t *testing.T) {
	combiner := interval.Combiner[booking, civil.Date]{
		Start: func(b booking) civil.Date { return b.from },
		End:   func(b booking) civil.Date { return b.to },
		New:   func(start, end civil.Date) booking { return booking{from: start, to: end} },
	}
	date := func(day int) civil.Date {
		return civil.Date{Year: 2024, Month: time.February, Day: 27}.AddDays(day)
	}

	t.Run("combines caller defined interval types", func(t *testing.T) {
		bookings := []booking{{date(2), date(4)}, {date(0), date(2)}, {date(6), date(7)}}

		combined, err := combiner.CombineIntervals(slices.Values(bookings))
		assert.NoError(t, err)
		assert.Equal(t, []booking{{date(0), date(4)}, {date(6), date(7)}}, slices.Collect(combined))

		overlapping, err := combiner.CombineOverlappingIntervals(slices.Values(bookings))
		assert.NoError(t, err)
		assert.Equal(t, []booking{{date(0), date(2)}, {date(2), date(4)}, {date(6), date(7)}}, slices.Collect(overlapping))
	})
	t.Run("uses caller comparer when given", func(t *testing.T) {
		var calls int
		withCompare := combiner
		withCompare.Compare = func(a, b booking) int {
			calls++
			return a.from.DaysSince(b.from)
		}

		combined, err := withCompare.CombineIntervals(slices.Values([]booking{{date(3), date(5)}, {date(0), date(1)}}))
		assert.NoError(t, err)
		assert.Equal(t, []booking{{date(0), date(1)}, {date(3), date(5)}}, slices.Collect(combined))
		assert.Positive(t, calls)
	})
	t.Run("returns error when accessors are missing", func(t *testing.T) {
		var incomplete interval.Combiner[booking, civil.Date]
		_, err := incomplete.CombineIntervals(slices.Values([]booking{}))
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
	t.Run("returns error for nil sequence", func(t *testing.T) {
		var items iter.Seq[booking]
		_, err := combiner.CombineIntervals(items)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
}
