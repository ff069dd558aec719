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

package rtc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/Foxtrot2400/dsttime/caltime"
)

// DefaultDevice is the first kernel RTC.
const DefaultDevice = "/dev/rtc0"

// DevRTC writes to a Linux kernel RTC device via the RTC_SET_TIME ioctl.
// Requires permission to open the device for writing (usually root).
type DevRTC struct {
	// Path of the device node, DefaultDevice if empty.
	Path string
}

// SetTime writes the calendar fields to the RTC register set.
// struct rtc_time wants months 0-11, years since 1900 and a 0-based yearday.
func (d *DevRTC) SetTime(tt caltime.Tuple) error {
	path := d.Path
	if path == "" {
		path = DefaultDevice
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rt := &unix.RTCTime{
		Sec:  int32(tt.Second),
		Min:  int32(tt.Minute),
		Hour: int32(tt.Hour),
		Mday: int32(tt.Day),
		Mon:  int32(tt.Month) - 1,
		Year: int32(tt.Year) - 1900,
		Wday: int32(tt.Weekday),
		Yday: int32(tt.YearDay) - 1,
	}
	if err := unix.IoctlSetRTCTime(int(f.Fd()), rt); err != nil {
		return fmt.Errorf("failed to set time on %s: %w", path, err)
	}
	return nil
}
