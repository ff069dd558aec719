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
Package timesync chains the NTP fetch, the UTC to US local conversion and
the hardware clock write into one synchronization step.
*/
package timesync

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Foxtrot2400/dsttime/caltime"
	"github.com/Foxtrot2400/dsttime/dst"
	"github.com/Foxtrot2400/dsttime/rtc"
)

// Fetcher obtains the current UTC time. *ntp.Client satisfies it.
type Fetcher interface {
	Time(ctx context.Context) (time.Time, error)
}

// Syncer writes NTP-derived US local time into a hardware clock.
// Both dependencies are required; there are no defaults.
type Syncer struct {
	Fetcher Fetcher
	Device  rtc.Device
}

// SetLocalTime fetches UTC time, converts it to local time for the given
// standard-time UTC offset (DST applied automatically) and writes the
// result into the hardware clock. Returns the tuple written. Fetch and
// hardware errors are propagated as-is; there is no retry and no rollback
// of a partial hardware write.
func (s *Syncer) SetLocalTime(ctx context.Context, tzOffsetHours int) (caltime.Tuple, error) {
	utc, err := s.Fetcher.Time(ctx)
	if err != nil {
		return caltime.Tuple{}, fmt.Errorf("failed to fetch NTP time: %w", err)
	}
	local := dst.UTCToLocal(utc, tzOffsetHours)
	log.Debugf("UTC %s -> local %s (standard offset %+dh)", utc.Format(time.RFC3339), local, tzOffsetHours)

	if err := s.Device.SetTime(local); err != nil {
		return caltime.Tuple{}, fmt.Errorf("failed to write hardware clock: %w", err)
	}
	log.Infof("hardware clock set to %s", local)
	return local, nil
}

// SetLocalTimeZone is SetLocalTime with the offset resolved from a US
// timezone name such as "US/Eastern".
func (s *Syncer) SetLocalTimeZone(ctx context.Context, name string) (caltime.Tuple, error) {
	offset, err := dst.OffsetByName(name)
	if err != nil {
		return caltime.Tuple{}, err
	}
	return s.SetLocalTime(ctx, offset)
}
