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
	"bytes"
	"encoding/binary"
)

// PacketSizeBytes is the size of an NTP packet without extensions.
const PacketSizeBytes = 48

// Packet is an NTPv4 packet as described in RFC 5905 section 7.3.
// All fields are big-endian on the wire; timestamps are split into
// 32-bit seconds since the NTP epoch (1900-01-01) and 32-bit fractions.
type Packet struct {
	Settings       uint8  // leap indicator, version number and mode
	Stratum        uint8  // stratum
	Poll           int8   // poll interval. Power of 2
	Precision      int8   // clock precision. Power of 2
	RootDelay      uint32 // total delay to the reference clock
	RootDispersion uint32 // total dispersion to the reference clock
	ReferenceID    uint32 // identifier of server or a reference clock
	RefTimeSec     uint32 // last time local clock was updated sec
	RefTimeFrac    uint32 // last time local clock was updated frac
	OrigTimeSec    uint32 // client time sec
	OrigTimeFrac   uint32 // client time frac
	RxTimeSec      uint32 // receive time sec
	RxTimeFrac     uint32 // receive time frac
	TxTimeSec      uint32 // transmit time sec
	TxTimeFrac     uint32 // transmit time frac
}

/*
First byte layout, LI | VN | Mode:

	 0 1 2 3 4 5 6 7
	+-+-+-+-+-+-+-+-+
	|LI | VN  |Mode |
	+-+-+-+-+-+-+-+-+

A client request with no leap warning and version 3 is
00 011 011, or 0x1B.
*/
const (
	// RequestSettings is the Settings byte of a client mode request.
	RequestSettings uint8 = 0x1B

	liAlarmCondition = 3
	vnFirst          = 1
	vnLast           = 4
	modeServer       = 4
)

// ValidServerResponse verifies that the first byte marks the packet as a
// sane server reply (known version, server mode, clock synchronized) and
// that it is not a kiss-o'-death (stratum 0).
func (p *Packet) ValidServerResponse() bool {
	l := p.Settings >> 6
	v := (p.Settings << 2) >> 5
	m := (p.Settings << 5) >> 5
	if l == liAlarmCondition || m != modeServer {
		return false
	}
	if v < vnFirst || v > vnLast {
		return false
	}
	return p.Stratum != 0
}

// Bytes converts Packet to its wire format
func (p *Packet) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := binary.Write(&buf, binary.BigEndian, p)
	return buf.Bytes(), err
}

// BytesToPacket converts wire format to a Packet
func BytesToPacket(b []byte) (*Packet, error) {
	packet := &Packet{}
	reader := bytes.NewReader(b)
	err := binary.Read(reader, binary.BigEndian, packet)
	return packet, err
}
