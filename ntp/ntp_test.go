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

package ntp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	// Unix
	usec  = int64(1585147599)
	unsec = int64(631495778)
	// NTP
	nsec  = uint32(3794136399)
	nfrac = uint32(2712253714)

	// Server reply captured from an ntpdate run
	serverResponse = &Packet{
		Settings:       36,
		Stratum:        1,
		Poll:           3,
		Precision:      -32,
		RootDelay:      0,
		RootDispersion: 10,
		ReferenceID:    1178738720,
		RefTimeSec:     3794209800,
		RefTimeFrac:    0,
		OrigTimeSec:    3794210679,
		OrigTimeFrac:   2718216404,
		RxTimeSec:      3794210679,
		RxTimeFrac:     2718375472,
		TxTimeSec:      3794210679,
		TxTimeFrac:     2719753478,
	}
	// Same reply as above in bytes
	serverResponseBytes = []byte{36, 1, 3, 224, 0, 0, 0, 0, 0, 0, 0, 10, 70, 66, 32, 32, 226, 39, 12, 8, 0, 0, 0, 0, 226, 39, 15, 119, 162, 4, 176, 212, 226, 39, 15, 119, 162, 7, 30, 48, 226, 39, 15, 119, 162, 28, 37, 6}
)

// Testing conversion so if Packet structure changes we notice
func TestResponseConversion(t *testing.T) {
	b, err := serverResponse.Bytes()
	require.NoError(t, err)
	require.Equal(t, serverResponseBytes, b)
}

func TestBytesToPacket(t *testing.T) {
	packet, err := BytesToPacket(serverResponseBytes)
	require.NoError(t, err)
	require.Equal(t, serverResponse, packet)
}

func TestBytesToPacketError(t *testing.T) {
	packet, err := BytesToPacket([]byte{})
	require.Error(t, err)
	require.Equal(t, &Packet{}, packet)
}

func TestResponseSize(t *testing.T) {
	require.Equal(t, PacketSizeBytes, len(serverResponseBytes))
}

func TestValidServerResponse(t *testing.T) {
	require.True(t, serverResponse.ValidServerResponse())
}

func TestInvalidServerResponse(t *testing.T) {
	// a client mode packet echoed back is not a server reply
	clientPacket := &Packet{Settings: RequestSettings, Stratum: 2}
	require.False(t, clientPacket.ValidServerResponse())
	// kiss-o'-death
	kod := &Packet{Settings: 36, Stratum: 0}
	require.False(t, kod.ValidServerResponse())
	// alarm condition means the server clock is not synchronized
	alarm := &Packet{Settings: 0xE4, Stratum: 1}
	require.False(t, alarm.ValidServerResponse())
}

func TestTime(t *testing.T) {
	testtime := time.Unix(usec, unsec)
	sec, frac := Time(testtime)

	require.Equal(t, nsec, sec)
	require.Equal(t, nfrac, frac)
}

func TestUnix(t *testing.T) {
	testtime := Unix(nsec, nfrac)

	require.Equal(t, usec, testtime.Unix())
	// +1ns is a rounding issue
	require.Equal(t, unsec, int64(testtime.Nanosecond())+1)
}

func TestRoundTripDelay(t *testing.T) {
	originTime := time.Now()
	serverReceiveTime := originTime.Add(10 * time.Millisecond)
	serverTransmitTime := serverReceiveTime.Add(10 * time.Microsecond)
	clientReceiveTime := serverTransmitTime.Add(20 * time.Millisecond)

	require.Equal(t, int64(30000000), RoundTripDelay(originTime, serverReceiveTime, serverTransmitTime, clientReceiveTime))
}

func TestOffset(t *testing.T) {
	// server clock runs 123us ahead, symmetric 15ms path each way
	skew := 123 * time.Microsecond
	path := 15 * time.Millisecond

	originTime := time.Now()
	serverReceiveTime := originTime.Add(path + skew)
	serverTransmitTime := serverReceiveTime
	clientReceiveTime := serverTransmitTime.Add(path - skew)

	require.Equal(t, skew.Nanoseconds(), Offset(originTime, serverReceiveTime, serverTransmitTime, clientReceiveTime))
}

func TestCorrectTime(t *testing.T) {
	now := time.Now()
	require.Equal(t, now.Add(time.Millisecond), CorrectTime(now, time.Millisecond.Nanoseconds()))
}
