package endpoint_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/chronoset/internal/lib/endpoint"
)

func TestLenient(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	localAt := func(year int, month time.Month, day, hour, minute int) civil.DateTime {
		return civil.DateTime{
			Date: civil.Date{Year: year, Month: month, Day: day},
			Time: civil.Time{Hour: hour, Minute: minute},
		}
	}

	t.Run("returns the only mapping for unambiguous local time", func(t *testing.T) {
		actual := endpoint.Lenient(localAt(2024, time.March, 31, 12, 0), london)
		assert.True(t, time.Date(2024, 3, 31, 11, 0, 0, 0, time.UTC).Equal(actual))
	})
	t.Run("returns winter mapping for local time in winter", func(t *testing.T) {
		actual := endpoint.Lenient(localAt(2024, time.January, 15, 9, 0), london)
		assert.True(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC).Equal(actual))
	})
	t.Run("shifts skipped local time forward by the gap", func(t *testing.T) {
		actual := endpoint.Lenient(localAt(2024, time.March, 31, 1, 30), london)
		assert.True(t, time.Date(2024, 3, 31, 1, 30, 0, 0, time.UTC).Equal(actual))
		assert.Equal(t, 2, actual.Hour())
		assert.Equal(t, 30, actual.Minute())
	})
	t.Run("returns earlier alternative for ambiguous local time", func(t *testing.T) {
		actual := endpoint.Lenient(localAt(2024, time.October, 27, 1, 30), london)
		assert.True(t, time.Date(2024, 10, 27, 0, 30, 0, 0, time.UTC).Equal(actual))
	})
	t.Run("returns result in the requested location", func(t *testing.T) {
		actual := endpoint.Lenient(localAt(2024, time.June, 1, 8, 0), london)
		assert.Equal(t, london, actual.Location())
	})
}
