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
Package ntp implements the NTPv4 packet format and a minimal one-shot
UDP client. It translates between wire timestamps (seconds since the
1900 NTP epoch) and Unix time, and provides the RFC 958 offset and
round-trip delay math.
*/
package ntp

import (
	"time"
)

// NanosecondsToUnix is the difference between NTP and Unix epoch in NS
const NanosecondsToUnix = int64(2208988800000000000)

// Time is converting Unix time to sec and frac NTP format
func Time(t time.Time) (seconds uint32, fractions uint32) {
	nsec := t.UnixNano() + NanosecondsToUnix
	sec := nsec / time.Second.Nanoseconds()
	return uint32(sec), uint32((nsec - sec*time.Second.Nanoseconds()) << 32 / time.Second.Nanoseconds())
}

// Unix is converting NTP seconds and fractions into Unix time
func Unix(seconds, fractions uint32) time.Time {
	secs := int64(seconds) - NanosecondsToUnix/time.Second.Nanoseconds()
	nanos := (int64(fractions) * time.Second.Nanoseconds()) >> 32 // convert fractional to nanos
	return time.Unix(secs, nanos)
}

// RoundTripDelay calculates the network round-trip delay in nanoseconds from
// the four NTP exchange timestamps (client TX, server RX, server TX, client RX).
func RoundTripDelay(originTime, serverReceiveTime, serverTransmitTime, clientReceiveTime time.Time) int64 {
	return (clientReceiveTime.Sub(originTime) - serverTransmitTime.Sub(serverReceiveTime)).Nanoseconds()
}

// Offset calculates the offset between the local and the server clock in
// nanoseconds, assuming symmetric network delay.
func Offset(originTime, serverReceiveTime, serverTransmitTime, clientReceiveTime time.Time) int64 {
	return (serverReceiveTime.Sub(originTime) + serverTransmitTime.Sub(clientReceiveTime)).Nanoseconds() / 2
}

// CorrectTime applies the clock offset to a local timestamp
func CorrectTime(localTime time.Time, offset int64) time.Time {
	return localTime.Add(time.Duration(offset))
}
