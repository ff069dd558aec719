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
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/Foxtrot2400/dsttime/caltime"
)

// DefaultDS3231Addr is the fixed 7-bit I2C address of the chip.
const DefaultDS3231Addr uint16 = 0x68

// DS3231 drives the Maxim DS3231 clock chip over I2C. The chip keeps
// (second, minute, hour, weekday, day, month+century, year) in BCD in
// registers 0x00-0x06; the century bit extends the year range to 2000-2199.
type DS3231 struct {
	// Bus is the periph.io I2C bus name, "" for the platform default
	// (/dev/i2c-1 on a Raspberry Pi).
	Bus string
	// Addr is the 7-bit device address, DefaultDS3231Addr if zero.
	Addr uint16
}

func (d *DS3231) open() (*i2c.Dev, i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize host: %w", err)
	}
	bus, err := i2creg.Open(d.Bus)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open i2c bus %q: %w", d.Bus, err)
	}
	addr := d.Addr
	if addr == 0 {
		addr = DefaultDS3231Addr
	}
	return &i2c.Dev{Bus: bus, Addr: addr}, bus, nil
}

// SetTime writes the calendar fields into the chip registers in one
// transaction, starting at register 0x00.
func (d *DS3231) SetTime(tt caltime.Tuple) error {
	dev, bus, err := d.open()
	if err != nil {
		return err
	}
	defer bus.Close()

	regs, err := encodeClock(tt)
	if err != nil {
		return err
	}
	if err := dev.Tx(regs[:], nil); err != nil {
		return fmt.Errorf("failed to write clock registers: %w", err)
	}
	return nil
}

// ReadTime reads the chip registers back as a calendar tuple. Weekday and
// yearday are recomputed from the date rather than trusted from register 0x03.
func (d *DS3231) ReadTime() (caltime.Tuple, error) {
	dev, bus, err := d.open()
	if err != nil {
		return caltime.Tuple{}, err
	}
	defer bus.Close()

	var regs [7]byte
	if err := dev.Tx([]byte{0x00}, regs[:]); err != nil {
		return caltime.Tuple{}, fmt.Errorf("failed to read clock registers: %w", err)
	}
	return decodeClock(regs), nil
}

const centuryBit = 0x80

func encodeBCD(v int) byte {
	return byte(v/10<<4 | v%10)
}

func decodeBCD(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

// encodeClock lays out the write transaction: start register followed by
// the seven clock registers. Hours are kept in 24h mode (bit 6 clear).
func encodeClock(tt caltime.Tuple) ([8]byte, error) {
	var regs [8]byte
	if tt.Year < 2000 || tt.Year > 2199 {
		return regs, fmt.Errorf("year %d out of DS3231 range 2000-2199", tt.Year)
	}
	month := encodeBCD(int(tt.Month))
	year := tt.Year - 2000
	if year >= 100 {
		month |= centuryBit
		year -= 100
	}
	regs[0] = 0x00 // start register
	regs[1] = encodeBCD(tt.Second)
	regs[2] = encodeBCD(tt.Minute)
	regs[3] = encodeBCD(tt.Hour)
	regs[4] = byte(tt.Weekday) + 1 // chip weekday is 1-7
	regs[5] = encodeBCD(tt.Day)
	regs[6] = month
	regs[7] = encodeBCD(year)
	return regs, nil
}

func decodeClock(regs [7]byte) caltime.Tuple {
	year := 2000 + decodeBCD(regs[6])
	if regs[5]&centuryBit != 0 {
		year += 100
	}
	tt := caltime.Tuple{
		Year:   year,
		Month:  time.Month(decodeBCD(regs[5] &^ centuryBit)),
		Day:    decodeBCD(regs[4]),
		Hour:   decodeBCD(regs[2] & 0x3F),
		Minute: decodeBCD(regs[1]),
		Second: decodeBCD(regs[0] & 0x7F),
	}
	// normalize to fill weekday and yearday
	return caltime.FromTime(tt.Time())
}
