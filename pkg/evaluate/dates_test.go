//go:build unit

package evaluate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-10T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Hour())

	d, err = ParseDate("2024-03-10T08:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC), d.UTC())

	for _, bad := range []string{"", "10/03/2024", "2024-13-01", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrUnparseableDate, bad)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)

	yesterday, _ := ParseDate("2024-03-14")
	today, _ := ParseDate("2024-03-15")
	tomorrow, _ := ParseDate("2024-03-16")

	assert.True(t, IsOverdue(yesterday, now))
	assert.False(t, IsOverdue(today, now))
	assert.False(t, IsOverdue(tomorrow, now))

	endOfToday := time.Date(2024, 3, 15, 23, 59, 59, 999999000, time.UTC)
	assert.False(t, IsOverdue(today, endOfToday))
	assert.True(t, IsOverdue(today, endOfToday.Add(time.Microsecond)))
}

func TestDaysOverdue(t *testing.T) {
	target, _ := ParseDate("2024-03-10")

	assert.Equal(t, 5, DaysOverdue(target, testNow))
	assert.Equal(t, 1, DaysOverdue(target, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysOverdue(target, time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)))

	future, _ := ParseDate("2024-04-01")
	assert.Equal(t, 0, DaysOverdue(future, testNow))
}

func TestDaysOverdue_NeverZeroWhenOverdue(t *testing.T) {
	target, err := ParseDate("2024-03-11T10:00:00+14:00")
	require.NoError(t, err)

	now := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	require.True(t, IsOverdue(target, now))
	assert.Equal(t, 1, DaysOverdue(target, now))
}

func TestDaysInactive(t *testing.T) {
	assert.Equal(t, 6, DaysInactive(testNow.AddDate(0, 0, -6), testNow))
	assert.Equal(t, 5, DaysInactive(testNow.Add(-5*24*time.Hour-time.Minute), testNow))
	assert.Equal(t, 4, DaysInactive(testNow.Add(-5*24*time.Hour+time.Minute), testNow))
	assert.Equal(t, 0, DaysInactive(testNow, testNow))
}
