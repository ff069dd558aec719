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
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Foxtrot2400/dsttime/caltime"
	"github.com/Foxtrot2400/dsttime/dst"
)

const isdstDateFormat = "2006-01-02T15:04"

var isdstDate string

func init() {
	RootCmd.AddCommand(isdstCmd)
	isdstCmd.Flags().StringVarP(&isdstDate, "date", "d", "", "Local date to check, e.g. 2023-03-12T02:00. Defaults to now")
}

func runIsDST(date string) error {
	var local time.Time
	if date == "" {
		local = time.Now()
	} else {
		var err error
		local, err = time.Parse(isdstDateFormat, date)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", date, err)
		}
	}
	tt := caltime.FromTime(local)
	start, end := dst.TransitionDays(tt.Year)
	fmt.Printf("%s: DST in effect: %v\n", tt, dst.IsDST(tt))
	fmt.Printf("%d transitions: March %d 02:00 -> November %d 02:00\n", tt.Year, start, end)
	return nil
}

var isdstCmd = &cobra.Command{
	Use:   "isdst",
	Short: "Checks whether US daylight saving time is in effect for a date",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runIsDST(isdstDate); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}
