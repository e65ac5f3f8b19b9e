package interval_test

import (
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/interval"
)

func TestGetOverlapsWith(t *testing.T) {
	t.Run("returns pointwise intersection", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsWith(
			seq([2]int{1, 5}, [2]int{8, 12}, [2]int{14, 20}),
			seq([2]int{3, 9}, [2]int{11, 16}, [2]int{19, 19}),
		)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{3, 5}, [2]int{8, 9}, [2]int{11, 12}, [2]int{14, 16}), slices.Collect(overlaps))
	})
	t.Run("returns nothing for meeting intervals", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsWith(seq([2]int{1, 2}), seq([2]int{2, 3}))
		assert.NoError(t, err)
		assert.Empty(t, slices.Collect(overlaps))
	})
	t.Run("normalizes unordered overlapping inputs", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsWith(
			seq([2]int{6, 10}, [2]int{0, 4}, [2]int{3, 7}),
			seq([2]int{2, 3}, [2]int{9, 11}),
		)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{2, 3}, [2]int{9, 10}), slices.Collect(overlaps))
	})
	t.Run("advances both cursors on equal ends", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsWith(
			seq([2]int{0, 4}, [2]int{6, 8}),
			seq([2]int{2, 4}, [2]int{5, 7}),
		)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{2, 4}, [2]int{6, 7}), slices.Collect(overlaps))
	})
	t.Run("is symmetric and matches pointwise intersection", func(t *testing.T) {
		cases := [][2][][2]int{
			{{{0, 4}, {6, 9}, {10, 12}}, {{3, 7}, {8, 11}}},
			{{{0, 24}}, {{1, 2}, {2, 3}, {5, 9}}},
			{{{5, 6}}, {{0, 1}, {7, 8}}},
		}
		for _, c := range cases {
			a, b := list(c[0]...), list(c[1]...)
			ab, err := interval.GetOverlapsWith(slices.Values(a), slices.Values(b))
			assert.NoError(t, err)
			ba, err := interval.GetOverlapsWith(slices.Values(b), slices.Values(a))
			assert.NoError(t, err)

			result := slices.Collect(ab)
			assert.Equal(t, result, slices.Collect(ba))
			for _, ts := range samples(-1, 25) {
				assert.Equal(t, coveredAt(a, ts) && coveredAt(b, ts), coveredAt(result, ts), "at %s", ts)
			}
		}
	})
	t.Run("returns error when either input is nil", func(t *testing.T) {
		_, err := interval.GetOverlapsWith(nil, seq([2]int{1, 2}))
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		_, err = interval.GetOverlapsWith(seq([2]int{1, 2}), nil)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
}

func TestGetOverlapsBetweenSets(t *testing.T) {
	t.Run("returns intersection of all sets", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSets([]iter.Seq[interval.Interval[time.Time]]{
			seq([2]int{8, 17}),
			seq([2]int{9, 12}, [2]int{13, 18}),
			seq([2]int{7, 10}, [2]int{11, 14}),
		})
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{9, 10}, [2]int{11, 12}, [2]int{13, 14}), slices.Collect(overlaps))
	})
	t.Run("returns normalized set for single set", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSets([]iter.Seq[interval.Interval[time.Time]]{
			seq([2]int{3, 5}, [2]int{1, 4}),
		})
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{1, 5}), slices.Collect(overlaps))
	})
	t.Run("returns empty when any set is empty", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSets([]iter.Seq[interval.Interval[time.Time]]{
			seq([2]int{1, 5}), seq(), seq([2]int{1, 5}),
		})
		assert.NoError(t, err)
		assert.Empty(t, slices.Collect(overlaps))
	})
	t.Run("returns empty when no sets", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSets([]iter.Seq[interval.Interval[time.Time]]{})
		assert.NoError(t, err)
		assert.Empty(t, slices.Collect(overlaps))
	})
	t.Run("returns error for nil sets or nil member", func(t *testing.T) {
		_, err := interval.GetOverlapsBetweenSets[time.Time](nil)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))

		_, err = interval.GetOverlapsBetweenSets([]iter.Seq[interval.Interval[time.Time]]{seq([2]int{1, 2}), nil})
		assert.ErrorContains(t, err, "set at index 1 is nil")
	})
}

func TestGetOverlapsBetweenSetsWithMinimum(t *testing.T) {
	sets := func() []iter.Seq[interval.Interval[time.Time]] {
		return []iter.Seq[interval.Interval[time.Time]]{
			seq([2]int{8, 12}),
			seq([2]int{10, 14}),
			seq([2]int{11, 13}, [2]int{16, 18}),
		}
	}

	t.Run("returns stretches covered by at least two sets", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSetsWithMinimum(sets(), 2)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{10, 13}), slices.Collect(overlaps))
	})
	t.Run("returns stretches covered by all sets", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSetsWithMinimum(sets(), 3)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{11, 12}), slices.Collect(overlaps))
	})
	t.Run("returns union when one set is enough", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSetsWithMinimum(sets(), 1)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{8, 14}, [2]int{16, 18}), slices.Collect(overlaps))
	})
	t.Run("returns empty when minimum exceeds number of sets", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSetsWithMinimum(sets(), 4)
		assert.NoError(t, err)
		assert.Empty(t, slices.Collect(overlaps))
	})
	t.Run("ignores empty sets when counting", func(t *testing.T) {
		overlaps, err := interval.GetOverlapsBetweenSetsWithMinimum([]iter.Seq[interval.Interval[time.Time]]{
			seq([2]int{1, 4}), seq(), seq([2]int{3, 6}),
		}, 2)
		assert.NoError(t, err)
		assert.Equal(t, list([2]int{3, 4}), slices.Collect(overlaps))
	})
	t.Run("returns error for non positive minimum", func(t *testing.T) {
		_, err := interval.GetOverlapsBetweenSetsWithMinimum(sets(), 0)
		assert.True(t, errors.IsErrorType(err, errors.ErrOutOfRange))
		_, err = interval.GetOverlapsBetweenSetsWithMinimum(sets(), -2)
		assert.True(t, errors.IsErrorType(err, errors.ErrOutOfRange))
	})
	t.Run("returns error for nil sets", func(t *testing.T) {
		_, err := interval.GetOverlapsBetweenSetsWithMinimum[time.Time](nil, 1)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
}
