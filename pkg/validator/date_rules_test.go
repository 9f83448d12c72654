package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateInRange(t *testing.T) {
	t.Parallel()

	from, to := day(2024, time.January, 1), day(2024, time.December, 31)
	inRange := func(r *validator.Rule[field]) { r.IsDateInRange(from, to) }

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, v := range []time.Time{from, to, day(2024, time.July, 4)} {
			assert.True(t, check(v, inRange).Passed, "date %s", v)
		}
	})

	t.Run("outside the bounds", func(t *testing.T) {
		out := check(day(2023, time.December, 31), inRange)
		assert.False(t, out.Passed)
		assert.Equal(t, "The date must be between 2024-01-01 and 2024-12-31.", out.Message)

		assert.False(t, check(to.Add(time.Nanosecond), inRange).Passed)
	})

	t.Run("non-dates", func(t *testing.T) {
		for _, v := range []any{"2024-06-01", nil, fixedNow.Unix()} {
			out := check(v, inRange)
			assert.False(t, out.Passed, "value %#v", v)
			assert.Equal(t, "The value is not a date.", out.Message)
		}
	})

	t.Run("alias behaves the same", func(t *testing.T) {
		alias := func(r *validator.Rule[field]) { r.IsValidDateRange(from, to) }
		assert.True(t, check(from, alias).Passed)
		assert.Equal(t, check(day(2025, time.January, 1), inRange), check(day(2025, time.January, 1), alias))
	})
}

func TestIsDateBefore(t *testing.T) {
	t.Parallel()

	limit := day(2024, time.March, 1)
	before := func(r *validator.Rule[field]) { r.IsDateBefore(limit) }

	assert.True(t, check(limit.Add(-time.Second), before).Passed)

	out := check(limit, before)
	assert.False(t, out.Passed)
	assert.Equal(t, "The date must be before 2024-03-01.", out.Message)

	assert.Equal(t, "The value is not a date.", check("2024-01-01", before).Message)
}

func TestIsDateAfter(t *testing.T) {
	t.Parallel()

	limit := day(2024, time.March, 1)
	after := func(r *validator.Rule[field]) { r.IsDateAfter(limit) }

	assert.True(t, check(limit.Add(time.Second), after).Passed)

	out := check(limit, after)
	assert.False(t, out.Passed)
	assert.Equal(t, "The date must be after 2024-03-01.", out.Message)
}

func TestIsFutureDate(t *testing.T) {
	t.Parallel()

	opts := []validator.Option{validator.WithClock(fixedClock)}
	future := func(r *validator.Rule[field]) { r.IsFutureDate() }

	assert.True(t, checkWith(opts, fixedNow.Add(time.Minute), future).Passed)

	for _, v := range []time.Time{fixedNow, fixedNow.Add(-time.Minute)} {
		out := checkWith(opts, v, future)
		assert.False(t, out.Passed, "date %s", v)
		assert.Equal(t, "The date must be in the future.", out.Message)
	}

	assert.Equal(t, "The value is not a date.", checkWith(opts, nil, future).Message)
}

func TestIsPastDate(t *testing.T) {
	t.Parallel()

	opts := []validator.Option{validator.WithClock(fixedClock)}
	past := func(r *validator.Rule[field]) { r.IsPastDate() }

	assert.True(t, checkWith(opts, day(1990, time.May, 20), past).Passed)

	for _, v := range []time.Time{fixedNow, fixedNow.Add(time.Hour)} {
		out := checkWith(opts, v, past)
		assert.False(t, out.Passed, "date %s", v)
		assert.Equal(t, "The date must be in the past.", out.Message)
	}
}

func TestIsPastDate_UsesWallClockByDefault(t *testing.T) {
	t.Parallel()

	past := func(r *validator.Rule[field]) { r.IsPastDate() }

	assert.True(t, check(time.Now().Add(-time.Hour), past).Passed)
	assert.False(t, check(time.Now().Add(time.Hour), past).Passed)
}
