package window_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/duration"
	"github.com/goto/chronoset/internal/lib/window"
)

func utc(month time.Month, day, hour int) time.Time {
	return time.Date(2024, month, day, hour, 0, 0, 0, time.UTC)
}

func TestCustomWindow(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// a thursday
	ref := time.Date(2024, time.March, 14, 17, 45, 30, 0, time.UTC)

	none := duration.NewDuration(0, duration.None)

	t.Run("NewCustomWindow", func(t *testing.T) {
		t.Run("rejects negative size", func(t *testing.T) {
			_, err := window.NewCustomWindow(duration.NewDuration(-1, duration.Day), none, time.UTC, "")
			assert.True(t, errors.IsErrorType(err, errors.ErrOutOfRange))
		})
		t.Run("rejects unknown truncate unit", func(t *testing.T) {
			_, err := window.NewCustomWindow(duration.NewDuration(1, duration.Day), none, time.UTC, "g")
			assert.ErrorContains(t, err, "invalid value for unit g, accepted values are [h,d,w,M,y]")
		})
		t.Run("uses utc without location", func(t *testing.T) {
			w, err := window.NewCustomWindow(duration.NewDuration(1, duration.Day), none, nil, "")
			require.NoError(t, err)

			assert.True(t, utc(time.March, 14, 0).Equal(w.GetEnd(ref)))
		})
	})

	t.Run("GetInterval", func(t *testing.T) {
		tests := []struct {
			name       string
			size       duration.Duration
			delay      duration.Duration
			loc        *time.Location
			truncateTo string
			ref        time.Time
			start      time.Time
			end        time.Time
		}{
			{
				name:  "aligns hours to the hour",
				size:  duration.NewDuration(6, duration.Hour),
				ref:   ref,
				start: utc(time.March, 14, 11),
				end:   utc(time.March, 14, 17),
			},
			{
				name:  "aligns days to midnight",
				size:  duration.NewDuration(2, duration.Day),
				ref:   ref,
				start: utc(time.March, 12, 0),
				end:   utc(time.March, 14, 0),
			},
			{
				name:  "aligns weeks to monday",
				size:  duration.NewDuration(1, duration.Week),
				ref:   ref,
				start: utc(time.March, 4, 0),
				end:   utc(time.March, 11, 0),
			},
			{
				name:  "treats sunday as the last day of the week",
				size:  duration.NewDuration(1, duration.Week),
				ref:   utc(time.March, 17, 10),
				start: utc(time.March, 4, 0),
				end:   utc(time.March, 11, 0),
			},
			{
				name:  "keeps a reference on the week boundary",
				size:  duration.NewDuration(1, duration.Week),
				ref:   utc(time.March, 11, 0),
				start: utc(time.March, 4, 0),
				end:   utc(time.March, 11, 0),
			},
			{
				name:  "aligns months to the first day",
				size:  duration.NewDuration(1, duration.Month),
				ref:   ref,
				start: utc(time.February, 1, 0),
				end:   utc(time.March, 1, 0),
			},
			{
				name:  "aligns years to the first of january",
				size:  duration.NewDuration(1, duration.Year),
				ref:   ref,
				start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
				end:   utc(time.January, 1, 0),
			},
			{
				name:       "aligns to truncate unit over size unit",
				size:       duration.NewDuration(48, duration.Hour),
				truncateTo: "d",
				ref:        ref,
				start:      utc(time.March, 12, 0),
				end:        utc(time.March, 14, 0),
			},
			{
				name:       "keeps reference time with None",
				size:       duration.NewDuration(1, duration.Day),
				truncateTo: "None",
				ref:        ref,
				start:      ref.AddDate(0, 0, -1),
				end:        ref,
			},
			{
				name:       "reaches a day count back from the month boundary",
				size:       duration.NewDuration(10, duration.Day),
				truncateTo: "M",
				ref:        ref,
				start:      utc(time.February, 20, 0),
				end:        utc(time.March, 1, 0),
			},
			{
				name:  "moves the window back by delay",
				size:  duration.NewDuration(1, duration.Day),
				delay: duration.NewDuration(2, duration.Hour),
				ref:   ref,
				start: utc(time.March, 12, 22),
				end:   utc(time.March, 13, 22),
			},
			{
				name:  "applies delay before size in a leap year",
				size:  duration.NewDuration(1, duration.Month),
				delay: duration.NewDuration(1, duration.Day),
				ref:   ref,
				start: utc(time.January, 29, 0),
				end:   utc(time.February, 29, 0),
			},
			{
				name:  "aligns in the window location",
				size:  duration.NewDuration(1, duration.Day),
				loc:   tokyo,
				ref:   ref,
				start: time.Date(2024, time.March, 14, 0, 0, 0, 0, tokyo),
				end:   time.Date(2024, time.March, 15, 0, 0, 0, 0, tokyo),
			},
			{
				name:  "shrinks a day across the spring forward",
				size:  duration.NewDuration(1, duration.Day),
				loc:   london,
				ref:   utc(time.April, 1, 6),
				start: utc(time.March, 31, 0),
				end:   utc(time.March, 31, 23),
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				loc := tt.loc
				if loc == nil {
					loc = time.UTC
				}
				w, err := window.NewCustomWindow(tt.size, tt.delay, loc, tt.truncateTo)
				require.NoError(t, err)

				got, err := w.GetInterval(tt.ref)
				assert.NoError(t, err)
				assert.True(t, tt.start.Equal(got.Start()), "start %s, want %s", got.Start(), tt.start)
				assert.True(t, tt.end.Equal(got.End()), "end %s, want %s", got.End(), tt.end)
			})
		}
	})

	t.Run("GetEnd", func(t *testing.T) {
		t.Run("returns the same end for the same instant in any zone", func(t *testing.T) {
			w, err := window.NewCustomWindow(duration.NewDuration(1, duration.Day), none, tokyo, "")
			require.NoError(t, err)

			want := time.Date(2024, time.March, 15, 0, 0, 0, 0, tokyo)
			assert.True(t, want.Equal(w.GetEnd(ref)))
			assert.True(t, want.Equal(w.GetEnd(ref.In(london))))
			assert.Equal(t, tokyo, w.GetEnd(ref).Location())
		})
		t.Run("returns reference in window location with None", func(t *testing.T) {
			w, err := window.NewCustomWindow(duration.NewDuration(2, duration.Hour), none, tokyo, "None")
			require.NoError(t, err)

			end := w.GetEnd(ref)
			assert.True(t, ref.Equal(end))
			assert.Equal(t, 2, end.Hour())
		})
	})

	t.Run("FromCustomConfig", func(t *testing.T) {
		t.Run("returns error when size is invalid", func(t *testing.T) {
			_, err := window.FromCustomConfig(window.SimpleConfig{Size: "3g"})
			assert.Error(t, err)
		})
		t.Run("returns error when size is negative", func(t *testing.T) {
			_, err := window.FromCustomConfig(window.SimpleConfig{Size: "-3h"})
			assert.True(t, errors.IsErrorType(err, errors.ErrOutOfRange))
		})
		t.Run("returns error when delay is invalid", func(t *testing.T) {
			_, err := window.FromCustomConfig(window.SimpleConfig{Size: "1d", Delay: "2p"})
			assert.Error(t, err)
		})
		t.Run("returns error when location is unknown", func(t *testing.T) {
			_, err := window.FromCustomConfig(window.SimpleConfig{Size: "1d", Location: "Mars/Olympus"})
			assert.ErrorContains(t, err, "unknown location Mars/Olympus")
		})
		t.Run("builds window from strings", func(t *testing.T) {
			w, err := window.FromCustomConfig(window.SimpleConfig{
				Size:     "1d",
				Delay:    "1h",
				Location: "Asia/Tokyo",
			})
			require.NoError(t, err)

			got, err := w.GetInterval(ref)
			assert.NoError(t, err)
			assert.True(t, time.Date(2024, time.March, 14, 23, 0, 0, 0, tokyo).Equal(got.End()))
			assert.True(t, time.Date(2024, time.March, 13, 23, 0, 0, 0, tokyo).Equal(got.Start()))
		})
	})
}
