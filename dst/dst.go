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

/*
Package dst implements the United States daylight saving rules in effect
since 2007: DST runs from the second Sunday in March at 02:00 local
standard time through the first Sunday in November at 02:00 local time.
It also converts UTC instants to US local time given a standard-time
UTC offset.
*/
package dst

import (
	"fmt"
	"time"

	"github.com/Foxtrot2400/dsttime/caltime"
)

// transitionHour is the local hour at which both DST transitions happen.
const transitionHour = 2

// Offsets maps supported US timezone names to their standard-time UTC
// offset in hours.
var Offsets = map[string]int{
	"US/Eastern":  -5,
	"US/Central":  -6,
	"US/Mountain": -7,
	"US/Pacific":  -8,
}

// OffsetByName resolves a US timezone name to its standard-time UTC offset.
func OffsetByName(name string) (int, error) {
	offset, ok := Offsets[name]
	if !ok {
		return 0, fmt.Errorf("unsupported timezone %q, supported are: US/Eastern, US/Central, US/Mountain, US/Pacific", name)
	}
	return offset, nil
}

// firstSunday returns the day of month of the first Sunday of the given
// month, derived from the weekday of the 1st.
func firstSunday(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return 1 + (7-int(wd))%7
}

// TransitionDays returns the day of month of the second Sunday in March and
// the first Sunday in November for the given year, the two US DST
// transition dates.
func TransitionDays(year int) (marchSecondSunday, novemberFirstSunday int) {
	return firstSunday(year, time.March) + 7, firstSunday(year, time.November)
}

// IsDST reports whether US daylight saving time is in effect for tt,
// interpreted as local standard time. On the March transition day DST
// starts at 02:00; on the November transition day it ends at 02:00.
// Tuples with out-of-range fields produce unspecified results.
func IsDST(tt caltime.Tuple) bool {
	switch {
	case tt.Month > time.March && tt.Month < time.November:
		return true
	case tt.Month < time.March || tt.Month > time.November:
		return false
	}
	start, end := TransitionDays(tt.Year)
	if tt.Month == time.March {
		if tt.Day != start {
			return tt.Day > start
		}
		return tt.Hour >= transitionHour
	}
	if tt.Day != end {
		return tt.Day < end
	}
	return tt.Hour < transitionHour
}

// UTCToLocal converts a UTC instant to the local calendar time for a US zone
// with the given standard-time offset, adding one hour while DST is in
// effect. Day, month and year roll over as needed.
func UTCToLocal(utc time.Time, tzOffsetHours int) caltime.Tuple {
	local := caltime.FromTime(utc.UTC().Add(time.Duration(tzOffsetHours) * time.Hour))
	if IsDST(local) {
		local = local.Add(time.Hour)
	}
	return local
}
