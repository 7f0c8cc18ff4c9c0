//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBucket(t *testing.T) {
	cases := []struct {
		input    string
		expected booking.Bucket
		wantErr  bool
	}{
		{input: "ALL", expected: booking.BucketAll},
		{input: "CURRENT", expected: booking.BucketCurrent},
		{input: "PAST", expected: booking.BucketPast},
		{input: "FUTURE", expected: booking.BucketFuture},
		{input: "WAITING", expected: booking.BucketWaiting},
		{input: "REJECTED", expected: booking.BucketRejected},
		{input: "current", expected: booking.BucketCurrent},
		{input: "Waiting", expected: booking.BucketWaiting},
		{input: "UNSUPPORTED_STATUS", wantErr: true},
		{input: "", wantErr: true},
		{input: "APPROVED", wantErr: true},
	}

	for _, c := range cases {
		t.Run("input "+c.input, func(t *testing.T) {
			actual, err := booking.ParseBucket(c.input)
			if c.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrUnsupportedState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestBucketMatches(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	build := func(start, end time.Time, status booking.Status) *booking.Booking {
		b := builder.NewBookingBuilder()
		b.Start = start
		b.End = end
		b.Status = status.String()
		return b.BuildReconstructed()
	}

	running := build(now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)
	ended := build(now.Add(-3*time.Hour), now.Add(-time.Hour), booking.StatusApproved)
	upcoming := build(now.Add(time.Hour), now.Add(3*time.Hour), booking.StatusWaiting)
	rejected := build(now.Add(time.Hour), now.Add(3*time.Hour), booking.StatusRejected)

	t.Run("temporal buckets classify by window and ignore status", func(t *testing.T) {
		assert.True(t, booking.BucketCurrent.Matches(running, now))
		assert.False(t, booking.BucketPast.Matches(running, now))
		assert.False(t, booking.BucketFuture.Matches(running, now))

		assert.True(t, booking.BucketPast.Matches(ended, now))
		assert.False(t, booking.BucketCurrent.Matches(ended, now))

		assert.True(t, booking.BucketFuture.Matches(upcoming, now))
		assert.True(t, booking.BucketFuture.Matches(rejected, now))
	})

	t.Run("status buckets classify by status and ignore time", func(t *testing.T) {
		assert.True(t, booking.BucketWaiting.Matches(upcoming, now))
		assert.False(t, booking.BucketWaiting.Matches(rejected, now))

		assert.True(t, booking.BucketRejected.Matches(rejected, now))
		assert.False(t, booking.BucketRejected.Matches(running, now))

		// a rejected future booking matches both FUTURE and REJECTED
		assert.True(t, booking.BucketFuture.Matches(rejected, now))
		assert.True(t, booking.BucketRejected.Matches(rejected, now))
	})

	t.Run("ALL matches everything", func(t *testing.T) {
		for _, b := range []*booking.Booking{running, ended, upcoming, rejected} {
			assert.True(t, booking.BucketAll.Matches(b, now))
		}
	})

	t.Run("window boundaries are inclusive for CURRENT", func(t *testing.T) {
		startsNow := build(now, now.Add(time.Hour), booking.StatusApproved)
		endsNow := build(now.Add(-time.Hour), now, booking.StatusApproved)

		assert.True(t, booking.BucketCurrent.Matches(startsNow, now))
		assert.False(t, booking.BucketFuture.Matches(startsNow, now))

		assert.True(t, booking.BucketCurrent.Matches(endsNow, now))
		assert.False(t, booking.BucketPast.Matches(endsNow, now))
	})
}
