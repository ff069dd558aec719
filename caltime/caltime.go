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
Package caltime provides the broken-down calendar time representation
shared between the DST rules, the NTP client and the RTC drivers.
It mirrors the (year, month, day, hour, minute, second, weekday, yearday)
tuple that RTC register sets and C's struct tm use.
*/
package caltime

import (
	"fmt"
	"time"
)

// Tuple is a broken-down calendar time.
// Weekday follows time.Weekday numbering (Sunday == 0), YearDay is 1-based.
type Tuple struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
	YearDay int
}

// FromTime breaks t down into a Tuple using t's location.
func FromTime(t time.Time) Tuple {
	return Tuple{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
		YearDay: t.YearDay(),
	}
}

// Time recomposes the tuple as a UTC instant. Out-of-range fields are
// normalized the same way time.Date normalizes them, so Dec 31 23:00 plus
// an hour lands on Jan 1 of the next year.
func (tt Tuple) Time() time.Time {
	return time.Date(tt.Year, tt.Month, tt.Day, tt.Hour, tt.Minute, tt.Second, 0, time.UTC)
}

// Add shifts the tuple by d and returns it re-normalized, with weekday and
// yearday recomputed.
func (tt Tuple) Add(d time.Duration) Tuple {
	return FromTime(tt.Time().Add(d))
}

func (tt Tuple) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d (%s, day %d)",
		tt.Year, tt.Month, tt.Day, tt.Hour, tt.Minute, tt.Second, tt.Weekday, tt.YearDay)
}
