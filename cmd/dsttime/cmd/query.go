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

	"github.com/Foxtrot2400/dsttime/dst"
	"github.com/Foxtrot2400/dsttime/ntp"
)

var queryServer string
var queryTimeout time.Duration
var queryTimezone string

func init() {
	RootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryServer, "server", "s", ntp.DefaultServer, "NTP server to query")
	queryCmd.Flags().DurationVarP(&queryTimeout, "timeout", "t", ntp.DefaultTimeout, "Exchange timeout")
	queryCmd.Flags().StringVarP(&queryTimezone, "timezone", "z", "US/Eastern", "US timezone for the local time display")
}

func runQuery(server string, timeout time.Duration, timezone string) error {
	offset, err := dst.OffsetByName(timezone)
	if err != nil {
		return err
	}
	c := &ntp.Client{Server: server, Timeout: timeout}
	utc, err := c.Time(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("UTC:   %s\n", utc.Format(time.RFC3339))
	fmt.Printf("Local: %s (%s)\n", dst.UTCToLocal(utc, offset), timezone)
	return nil
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Queries an NTP server once and prints UTC and US local time",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runQuery(queryServer, queryTimeout, queryTimezone); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}
