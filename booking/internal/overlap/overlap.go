// Package overlap answers interval-intersection queries over the active
// bookings of a single axis key (car or customer).
package overlap

import (
	"sort"
	"time"
)

// Axis selects which identifier an overlap query is keyed by.
type Axis string

const (
	AxisCar      Axis = "car"
	AxisCustomer Axis = "customer"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	BookingUid string
	Start      time.Time
	End        time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Back-to-back intervals (a.End == b.Start) do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// AnyOverlap reports whether iv intersects any interval in the slice,
// skipping the one identified by excludeUid (re-validation of an edited
// booking against itself). The slice must be sorted by Start; callers must
// not depend on which overlapping interval is found.
func AnyOverlap(sorted []Interval, iv Interval, excludeUid string) bool {
	// first interval with Start >= iv.End cannot overlap, nor can any after it
	hi := sort.Search(len(sorted), func(i int) bool {
		return !sorted[i].Start.Before(iv.End)
	})
	for i := 0; i < hi; i++ {
		if sorted[i].BookingUid == excludeUid {
			continue
		}
		if sorted[i].Overlaps(iv) {
			return true
		}
	}
	return false
}
