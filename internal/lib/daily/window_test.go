package daily_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/daily"
	"github.com/goto/chronoset/internal/lib/interval"
)

func TestWindow(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	night, err := daily.NewWindow(window(t, "20:00-10:00"), jakarta)
	require.NoError(t, err)
	office, err := daily.NewWindow(window(t, "08:00-22:00"), jakarta)
	require.NoError(t, err)
	officeTokyo, err := daily.NewWindow(window(t, "08:00-22:00"), tokyo)
	require.NoError(t, err)

	t.Run("returns error when location is nil", func(t *testing.T) {
		_, err := daily.NewWindow(window(t, "08:00-22:00"), nil)
		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
	t.Run("compares windows in the same location", func(t *testing.T) {
		overlaps, err := night.Overlaps(office)
		assert.NoError(t, err)
		assert.True(t, overlaps)

		pieces, err := night.GetOverlapsWith(office)
		assert.NoError(t, err)
		assert.Len(t, pieces, 2)
		assert.Equal(t, "08:00-10:00", pieces[0].Interval.String())
		assert.Equal(t, "20:00-22:00", pieces[1].Interval.String())
		assert.Equal(t, jakarta, pieces[1].Location)
	})
	t.Run("returns error for windows in different locations", func(t *testing.T) {
		_, err := night.Overlaps(officeTokyo)
		assert.True(t, errors.IsErrorType(err, errors.ErrFailedPrecond))

		_, err = officeTokyo.GetOverlapsWith(night)
		assert.True(t, errors.IsErrorType(err, errors.ErrFailedPrecond))
	})
	t.Run("materializes in its own location", func(t *testing.T) {
		rng := interval.NewInterval(
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		)
		occurrences, err := office.Materialize(rng)
		require.NoError(t, err)

		var starts []time.Time
		for o := range occurrences {
			starts = append(starts, o.Start().UTC())
		}
		assert.Equal(t, []time.Time{time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)}, starts)
	})
}
