package overlap_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/booking-service/booking/internal/overlap"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2024, 12, 15, hour, 0, 0, 0, time.UTC)
}

func iv(uid string, from, to int) overlap.Interval {
	return overlap.Interval{BookingUid: uid, Start: at(from), End: at(to)}
}

func TestInterval_Overlaps(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b overlap.Interval
		want bool
	}{
		{name: "partial overlap", a: iv("a", 10, 12), b: iv("b", 11, 13), want: true},
		{name: "contained", a: iv("a", 10, 14), b: iv("b", 11, 12), want: true},
		{name: "identical", a: iv("a", 10, 12), b: iv("b", 10, 12), want: true},
		{name: "back to back", a: iv("a", 10, 11), b: iv("b", 11, 12), want: false},
		{name: "disjoint", a: iv("a", 8, 9), b: iv("b", 11, 12), want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			require.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestAnyOverlap(t *testing.T) {
	t.Parallel()
	sorted := []overlap.Interval{
		iv("b1", 8, 10),
		iv("b2", 10, 12),
		iv("b3", 15, 18),
	}

	require.False(t, overlap.AnyOverlap(sorted, iv("n", 12, 15), ""), "gap between b2 and b3")
	require.False(t, overlap.AnyOverlap(sorted, iv("n", 18, 20), ""), "after the last interval")
	require.True(t, overlap.AnyOverlap(sorted, iv("n", 11, 13), ""))
	require.True(t, overlap.AnyOverlap(sorted, iv("n", 9, 16), ""))

	// editing b2 against itself is not a conflict
	require.False(t, overlap.AnyOverlap(sorted, iv("b2", 10, 12), "b2"))
	require.True(t, overlap.AnyOverlap(sorted, iv("b2", 9, 12), "b2"), "still clashes with b1")
}

func TestAnyOverlap_Empty(t *testing.T) {
	t.Parallel()
	require.False(t, overlap.AnyOverlap(nil, iv("n", 10, 12), ""))
}
