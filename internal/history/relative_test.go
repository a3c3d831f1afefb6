package history

import (
	"testing"
	"time"
)

func TestRelativeDateBuckets(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same instant", now, "Today"},
		{"an hour ago", now.Add(-time.Hour), "Today"},
		{"23h ago", now.Add(-23 * time.Hour), "Today"},
		{"30h ago", now.Add(-30 * time.Hour), "Yesterday"},
		{"3 days ago", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"6 days 23h ago", now.Add(-6*24*time.Hour - 23*time.Hour), "6 days ago"},
		{"one week ago", now.Add(-7 * 24 * time.Hour), "Jun 8, 2024"},
		{"months ago", time.Date(2024, time.January, 1, 12, 0, 0, 0, time.Local), "Jan 1, 2024"},
		{"slightly in the future", now.Add(time.Minute), "Today"},
	}
	for _, tc := range cases {
		if got := RelativeDate(tc.t, now); got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}
}
