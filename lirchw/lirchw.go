// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lirchw

import (
	"fmt"
	"sync"

	"github.com/go-lpf/lpf"
)

// Device is a lpf.Sink backed by a Linux LIRC character device. Create one
// with Open.
type Device struct {
	mu     sync.Mutex
	fd     int
	path   string
	closed bool
}

// Open opens path (typically /dev/lirc0) and puts it into pulse send mode.
// The returned Device is safe for concurrent use and must be closed with
// Close when done.
func Open(path string) (*Device, error) {
	const op = "lirchw: open"
	fd, err := platformOpen(path)
	if err != nil {
		return nil, &lpf.Error{Kind: lpf.DeviceOpen, Op: op, Err: err}
	}
	if err := platformSetSendMode(fd); err != nil {
		platformClose(fd)
		return nil, &lpf.Error{Kind: lpf.DeviceOpen, Op: op, Err: err}
	}
	return &Device{fd: fd, path: path}, nil
}

// String implements fmt.Stringer.
func (d *Device) String() string {
	return fmt.Sprintf("lirchw.Device(%s)", d.path)
}

// Transmit implements lpf.Sink: it sets the carrier and writes the pulse
// buffer to the underlying device in one locked section, so concurrent
// Send calls from different controllers sharing one Device don't
// interleave their carrier/pulse writes.
func (d *Device) Transmit(freqHz uint32, pulses []uint32) error {
	const op = "lirchw: transmit"
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return &lpf.Error{Kind: lpf.Io, Op: op, Err: fmt.Errorf("device %s is closed", d.path)}
	}
	if err := platformSetCarrier(d.fd, freqHz); err != nil {
		return &lpf.Error{Kind: lpf.CarrierUnsupported, Op: op, Err: err}
	}
	if err := platformWritePulses(d.fd, pulses); err != nil {
		return &lpf.Error{Kind: lpf.Io, Op: op, Err: err}
	}
	return nil
}

// Close releases the underlying file descriptor. Close is idempotent.
func (d *Device) Close() error {
	const op = "lirchw: close"
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if err := platformClose(d.fd); err != nil {
		return &lpf.Error{Kind: lpf.Io, Op: op, Err: err}
	}
	return nil
}

var _ lpf.Sink = (*Device)(nil)
