/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dst

import (
	"fmt"
	"testing"
	"time"

	"github.com/Foxtrot2400/dsttime/caltime"
	"github.com/stretchr/testify/require"
)

func tupleAt(year int, month time.Month, day, hour int) caltime.Tuple {
	return caltime.FromTime(time.Date(year, month, day, hour, 0, 0, 0, time.UTC))
}

func TestIsDSTWinterAndSummer(t *testing.T) {
	for year := 2007; year <= 2040; year++ {
		require.False(t, IsDST(tupleAt(year, time.January, 1, 12)), "Jan 1 %d", year)
		require.True(t, IsDST(tupleAt(year, time.July, 1, 12)), "Jul 1 %d", year)
		require.False(t, IsDST(tupleAt(year, time.December, 25, 12)), "Dec 25 %d", year)
	}
}

// reference Sundays computed by scanning the calendar day by day,
// independently of the weekday arithmetic in TransitionDays
func referenceSunday(year int, month time.Month, nth int) int {
	seen := 0
	for day := 1; day <= 31; day++ {
		if time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			seen++
			if seen == nth {
				return day
			}
		}
	}
	return 0
}

func TestTransitionDays(t *testing.T) {
	for year := 2007; year <= 2040; year++ {
		start, end := TransitionDays(year)
		require.Equal(t, referenceSunday(year, time.March, 2), start, "March %d", year)
		require.Equal(t, referenceSunday(year, time.November, 1), end, "November %d", year)
	}
}

func TestIsDSTBoundaries(t *testing.T) {
	tests := []struct {
		name string
		tt   caltime.Tuple
		want bool
	}{
		// 2023: DST Mar 12 02:00 - Nov 5 02:00
		{"before spring forward", tupleAt(2023, time.March, 12, 1), false},
		{"at spring forward", tupleAt(2023, time.March, 12, 2), true},
		{"day before spring forward", tupleAt(2023, time.March, 11, 23), false},
		{"day after spring forward", tupleAt(2023, time.March, 13, 0), true},
		{"before fall back", tupleAt(2023, time.November, 5, 1), true},
		{"at fall back", tupleAt(2023, time.November, 5, 2), false},
		{"day before fall back", tupleAt(2023, time.November, 4, 23), true},
		{"day after fall back", tupleAt(2023, time.November, 6, 0), false},
		// 2024: DST Mar 10 02:00 - Nov 3 02:00
		{"2024 spring boundary", tupleAt(2024, time.March, 10, 2), true},
		{"2024 before spring boundary", tupleAt(2024, time.March, 10, 1), false},
		{"2024 fall boundary", tupleAt(2024, time.November, 3, 2), false},
		{"2024 before fall boundary", tupleAt(2024, time.November, 3, 1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsDST(tc.tt))
		})
	}
}

func TestOffsetByName(t *testing.T) {
	offset, err := OffsetByName("US/Eastern")
	require.NoError(t, err)
	require.Equal(t, -5, offset)

	offset, err = OffsetByName("US/Pacific")
	require.NoError(t, err)
	require.Equal(t, -8, offset)

	_, err = OffsetByName("Europe/Berlin")
	require.Error(t, err)
}

func TestUTCToLocalEasternRoundTrip(t *testing.T) {
	// documented 2023 spring forward behavior for US/Eastern (-5)
	before := UTCToLocal(time.Date(2023, time.March, 12, 6, 59, 0, 0, time.UTC), -5)
	require.Equal(t, 1, before.Hour, "06:59 UTC is still 01:59 EST")
	require.Equal(t, 59, before.Minute)
	require.Equal(t, 12, before.Day)

	after := UTCToLocal(time.Date(2023, time.March, 12, 7, 0, 0, 0, time.UTC), -5)
	require.Equal(t, 3, after.Hour, "07:00 UTC is 03:00 EDT")
	require.Equal(t, 0, after.Minute)
	require.Equal(t, 12, after.Day)
}

func TestUTCToLocalHourArithmetic(t *testing.T) {
	tests := []struct {
		utc      time.Time
		offset   int
		wantHour int
		wantDay  int
	}{
		// standard time, no DST: plain offset
		{time.Date(2023, time.January, 15, 18, 0, 0, 0, time.UTC), -5, 13, 15},
		// summer: offset + 1
		{time.Date(2023, time.July, 1, 18, 0, 0, 0, time.UTC), -8, 11, 1},
		// day rollover going west across midnight
		{time.Date(2023, time.January, 1, 3, 0, 0, 0, time.UTC), -6, 21, 31},
	}
	for _, tc := range tests {
		got := UTCToLocal(tc.utc, tc.offset)
		require.Equal(t, tc.wantHour, got.Hour, "%v offset %d", tc.utc, tc.offset)
		require.Equal(t, tc.wantDay, got.Day, "%v offset %d", tc.utc, tc.offset)
	}
}

func TestUTCToLocalYearRollover(t *testing.T) {
	got := UTCToLocal(time.Date(2023, time.January, 1, 2, 30, 0, 0, time.UTC), -5)
	require.Equal(t, 2022, got.Year)
	require.Equal(t, time.December, got.Month)
	require.Equal(t, 31, got.Day)
	require.Equal(t, 21, got.Hour)
}

func ExampleIsDST() {
	tt := caltime.FromTime(time.Date(2023, time.July, 4, 12, 0, 0, 0, time.UTC))
	fmt.Println(IsDST(tt))
	// Output: true
}
