package cron_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/chronoset/internal/errors"
	"github.com/goto/chronoset/internal/lib/cron"
	"github.com/goto/chronoset/internal/lib/interval"
)

func TestScheduleSpec(t *testing.T) {
	at := func(value string) time.Time {
		parsed, err := time.Parse(time.RFC3339, value)
		require.NoError(t, err)
		return parsed
	}

	t.Run("Prev and Next", func(t *testing.T) {
		cases := []struct {
			name string
			expr string
			ref  string
			prev string
			next string
		}{
			{
				name: "daily between ticks",
				expr: "0 2 * * *",
				ref:  "2024-02-28T13:00:00Z",
				prev: "2024-02-28T02:00:00Z",
				next: "2024-02-29T02:00:00Z",
			},
			{
				name: "uneven days of month",
				expr: "30 6 3,17,29 * *",
				ref:  "2024-02-18T00:00:00Z",
				prev: "2024-02-17T06:30:00Z",
				next: "2024-02-29T06:30:00Z",
			},
			{
				name: "reference on a tick is excluded both ways",
				expr: "@weekly",
				ref:  "2024-03-03T00:00:00Z",
				prev: "2024-02-25T00:00:00Z",
				next: "2024-03-10T00:00:00Z",
			},
			{
				name: "monthly over a short month",
				expr: "@monthly",
				ref:  "2024-02-15T08:00:00Z",
				prev: "2024-02-01T00:00:00Z",
				next: "2024-03-01T00:00:00Z",
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				spec, err := cron.ParseCronSchedule(c.expr)
				require.NoError(t, err)

				assert.Equal(t, at(c.prev), spec.Prev(at(c.ref)))
				assert.Equal(t, at(c.next), spec.Next(at(c.ref)))
			})
		}
	})
	t.Run("IsSubDaily", func(t *testing.T) {
		subDaily := []string{"*/10 * * * *", "15 * * * *", "0 8,20 * * *", "0 9-17 * * 1-5", "@hourly", "@every 6h"}
		for _, expr := range subDaily {
			spec, err := cron.ParseCronSchedule(expr)
			require.NoError(t, err)
			assert.True(t, spec.IsSubDaily(), expr)
		}

		atMostDaily := []string{"0 2 * * *", "45 23 * * 0", "0 0 1,15 * *", "@daily", "@yearly", "@every 48h"}
		for _, expr := range atMostDaily {
			spec, err := cron.ParseCronSchedule(expr)
			require.NoError(t, err)
			assert.False(t, spec.IsSubDaily(), expr)
		}
	})
	t.Run("ParseCronSchedule", func(t *testing.T) {
		t.Run("returns error for invalid expression", func(t *testing.T) {
			_, err := cron.ParseCronSchedule("0 2 * *")
			assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		})
		t.Run("keeps the expression", func(t *testing.T) {
			scheduleSpec, err := cron.ParseCronSchedule("0 2 * * *")
			require.NoError(t, err)
			assert.Equal(t, "0 2 * * *", scheduleSpec.String())
		})
	})
	t.Run("Between", func(t *testing.T) {
		scheduleSpec, err := cron.ParseCronSchedule("0 */6 * * *")
		require.NoError(t, err)

		t.Run("yields ticks within the range including its start", func(t *testing.T) {
			rng := interval.NewInterval(
				time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			)
			assert.Equal(t, []time.Time{
				time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
			}, slices.Collect(scheduleSpec.Between(rng)))
		})
		t.Run("yields nothing for an empty range", func(t *testing.T) {
			at := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
			assert.Empty(t, slices.Collect(scheduleSpec.Between(interval.NewInterval(at, at))))
		})
	})
}
