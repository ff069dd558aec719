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
Package rtc writes calendar time into hardware real-time clocks.
Two backends are provided: the Linux kernel RTC device (/dev/rtcN)
and the DS3231 I2C clock chip.
*/
package rtc

import (
	"github.com/Foxtrot2400/dsttime/caltime"
)

// Device is the minimal hardware clock capability: one write of the full
// calendar register set. There is no transactional guarantee; if the write
// fails the clock is left in whatever state the driver produced.
type Device interface {
	SetTime(tt caltime.Tuple) error
}
