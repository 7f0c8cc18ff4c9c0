package booking

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// Bucket is a named temporal/status filter for listing bookings.
// CURRENT, PAST and FUTURE classify by the window relative to the reference
// time and ignore status; WAITING and REJECTED classify by status and ignore
// time. A booking can therefore fall into several buckets at once, but a
// single listing call always uses exactly one.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketPast     Bucket = "PAST"
	BucketFuture   Bucket = "FUTURE"
	BucketWaiting  Bucket = "WAITING"
	BucketRejected Bucket = "REJECTED"
)

func ParseBucket(s string) (Bucket, error) {
	switch Bucket(strings.ToUpper(s)) {
	case BucketAll:
		return BucketAll, nil
	case BucketCurrent:
		return BucketCurrent, nil
	case BucketPast:
		return BucketPast, nil
	case BucketFuture:
		return BucketFuture, nil
	case BucketWaiting:
		return BucketWaiting, nil
	case BucketRejected:
		return BucketRejected, nil
	default:
		return "", errs.ErrUnsupportedState
	}
}

func (bk Bucket) String() string {
	return string(bk)
}

// Matches is the in-memory form of the bucket predicate. The SQL store builds
// the equivalent WHERE clause; both must classify identically, so CURRENT is
// inclusive at both window edges (start <= now <= end).
func (bk Bucket) Matches(b *Booking, now time.Time) bool {
	switch bk {
	case BucketAll:
		return true
	case BucketCurrent:
		return b.Window().Contains(now)
	case BucketPast:
		return b.Window().EndedBefore(now)
	case BucketFuture:
		return b.Window().StartsAfter(now)
	case BucketWaiting:
		return b.Status() == StatusWaiting
	case BucketRejected:
		return b.Status() == StatusRejected
	default:
		return false
	}
}

// Role discriminates whose bookings a listing targets: the ones the user
// requested, or the ones placed on the user's items. Both roles share one
// query path so the bucket semantics cannot drift between them.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)

// ListFilter is the parameterized query the temporal classifier produces.
// Results are always sorted by window start, descending.
type ListFilter struct {
	UserID uuid.UUID
	Role   Role
	Bucket Bucket
	Now    time.Time
	Offset int
	Limit  int
}
