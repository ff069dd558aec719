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
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultServer is the public NTP pool, port included.
const DefaultServer = "pool.ntp.org:123"

// DefaultTimeout bounds the whole exchange including DNS resolution.
const DefaultTimeout = 2 * time.Second

// Client performs a single NTP exchange per call. The zero value queries
// the public pool with the default timeout. Network connectivity must be
// established before calling Time; the client neither retries nor manages
// the connection.
type Client struct {
	// Server is the host:port to query. Defaults to DefaultServer.
	Server string
	// Timeout bounds dialing, sending and receiving. Defaults to DefaultTimeout.
	Timeout time.Duration
	// DialContext opens the UDP connection. Defaults to net.Dialer's.
	// Tests substitute an in-memory transport here.
	DialContext func(ctx context.Context, network, address string) (net.Conn, error)
}

// Time obtains the current UTC time from the server with one request/reply
// exchange. Any failure (DNS, unreachable network, timeout, short or
// malformed reply) is returned as a single error.
func (c *Client) Time(ctx context.Context) (time.Time, error) {
	server := c.Server
	if server == "" {
		server = DefaultServer
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	dial := c.DialContext
	if dial == nil {
		dialer := &net.Dialer{}
		dial = dialer.DialContext
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := dial(ctx, "udp", server)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to connect to %s: %w", server, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return time.Time{}, fmt.Errorf("failed to set deadline: %w", err)
		}
	}

	clientTransmitTime := time.Now()
	sec, frac := Time(clientTransmitTime)
	request := &Packet{
		Settings:   RequestSettings,
		TxTimeSec:  sec,
		TxTimeFrac: frac,
	}
	if err := binary.Write(conn, binary.BigEndian, request); err != nil {
		return time.Time{}, fmt.Errorf("failed to send request to %s: %w", server, err)
	}

	buf := make([]byte, PacketSizeBytes)
	n, err := conn.Read(buf)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read response from %s: %w", server, err)
	}
	clientReceiveTime := time.Now()
	if n < PacketSizeBytes {
		return time.Time{}, fmt.Errorf("malformed response from %s: got %d bytes, want %d", server, n, PacketSizeBytes)
	}
	response, err := BytesToPacket(buf[:n])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed response from %s: %w", server, err)
	}
	if !response.ValidServerResponse() {
		return time.Time{}, fmt.Errorf("unexpected response from %s: settings %#02x, stratum %d", server, response.Settings, response.Stratum)
	}

	serverReceiveTime := Unix(response.RxTimeSec, response.RxTimeFrac)
	serverTransmitTime := Unix(response.TxTimeSec, response.TxTimeFrac)
	originTime := Unix(response.OrigTimeSec, response.OrigTimeFrac)

	log.Debugf("Origin TX timestamp (T1): %v", originTime)
	log.Debugf("Server RX timestamp (T2): %v", serverReceiveTime)
	log.Debugf("Server TX timestamp (T3): %v", serverTransmitTime)
	log.Debugf("Client RX timestamp (T4): %v", clientReceiveTime)
	log.Debugf("offset: %dns, delay: %dns",
		Offset(originTime, serverReceiveTime, serverTransmitTime, clientReceiveTime),
		RoundTripDelay(originTime, serverReceiveTime, serverTransmitTime, clientReceiveTime))

	return serverTransmitTime.UTC(), nil
}
