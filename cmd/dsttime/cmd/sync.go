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

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Foxtrot2400/dsttime/ntp"
	"github.com/Foxtrot2400/dsttime/rtc"
	"github.com/Foxtrot2400/dsttime/timesync"
)

var syncServer string
var syncTimeout time.Duration
var syncTimezone string
var syncRTCDevice string
var syncI2C bool
var syncI2CBus string

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVarP(&syncServer, "server", "s", ntp.DefaultServer, "NTP server to query")
	syncCmd.Flags().DurationVarP(&syncTimeout, "timeout", "t", ntp.DefaultTimeout, "Exchange timeout")
	syncCmd.Flags().StringVarP(&syncTimezone, "timezone", "z", "US/Eastern", "US timezone to sync the clock to")
	syncCmd.Flags().StringVarP(&syncRTCDevice, "rtc", "r", rtc.DefaultDevice, "Kernel RTC device to write")
	syncCmd.Flags().BoolVar(&syncI2C, "i2c", false, "Write a DS3231 chip over I2C instead of the kernel RTC")
	syncCmd.Flags().StringVar(&syncI2CBus, "i2c-bus", "", "I2C bus name, empty for the platform default")
}

func runSync() error {
	var device rtc.Device
	if syncI2C {
		device = &rtc.DS3231{Bus: syncI2CBus}
	} else {
		device = &rtc.DevRTC{Path: syncRTCDevice}
	}
	s := &timesync.Syncer{
		Fetcher: &ntp.Client{Server: syncServer, Timeout: syncTimeout},
		Device:  device,
	}
	tt, err := s.SetLocalTimeZone(context.Background(), syncTimezone)
	if err != nil {
		return err
	}
	fmt.Printf("Hardware clock set to %s (%s)\n", tt, syncTimezone)
	return nil
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Syncs a hardware clock to NTP-derived US local time",
	Long:  "'sync' performs one NTP exchange, converts the result to local time for the given US timezone (DST applied automatically) and writes it into the hardware real-time clock. Network connectivity must already be up.",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runSync(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}
