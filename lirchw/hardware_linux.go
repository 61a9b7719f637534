// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lirchw

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	ioctl "github.com/daedaluz/goioctl"
	"golang.org/x/sys/unix"
)

// LIRC ioctl magic and request numbers, from the kernel's
// include/uapi/linux/lirc.h.
const (
	lircMagic = 'i'

	lircSetSendModeNr      = 0x11
	lircSetSendCarrierNr   = 0x13
	lircSetSendDutyCycleNr = 0x15

	// lircModePulse selects LIRC_MODE_PULSE: the buffer written to the
	// device is a sequence of alternating mark/space durations in
	// microseconds, starting with a mark.
	lircModePulse = 2
)

var (
	lircSetSendMode    = ioctl.IOW(lircMagic, lircSetSendModeNr, unsafe.Sizeof(uint32(0)))
	lircSetSendCarrier = ioctl.IOW(lircMagic, lircSetSendCarrierNr, unsafe.Sizeof(uint32(0)))
)

// platformOpen, platformClose, platformSetSendMode, platformSetCarrier and
// platformWritePulses are the injection points lirchw.go calls through;
// assigning them here (rather than in lirchw.go) follows host/sysfs's
// per-platform-file convention so hardware_other.go can supply a disjoint
// set of the same names for non-Linux builds.
var (
	platformOpen        = linuxOpen
	platformClose       = linuxClose
	platformSetSendMode = linuxSetSendMode
	platformSetCarrier  = linuxSetCarrier
	platformWritePulses = linuxWritePulses
)

func linuxOpen(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_WRONLY, 0)
	if err != nil {
		return -1, fmt.Errorf("open %s: %w", path, err)
	}
	return fd, nil
}

func linuxClose(fd int) error {
	return unix.Close(fd)
}

func linuxSetSendMode(fd int) error {
	return linuxIoctlSetUint32(fd, lircSetSendMode, lircModePulse)
}

func linuxSetCarrier(fd int, hz uint32) error {
	return linuxIoctlSetUint32(fd, lircSetSendCarrier, hz)
}

func linuxIoctlSetUint32(fd int, req uintptr, value uint32) error {
	v := value
	if err := ioctl.Ioctl(fd, req, uintptr(unsafe.Pointer(&v))); err != nil {
		return fmt.Errorf("ioctl %#x: %w", req, err)
	}
	return nil
}

// linuxWritePulses writes pulses as a buffer of native-endian uint32
// microsecond durations, the wire format LIRC_MODE_PULSE expects.
func linuxWritePulses(fd int, pulses []uint32) error {
	if len(pulses) == 0 {
		return nil
	}
	buf := make([]byte, len(pulses)*4)
	for i, p := range pulses {
		binary.NativeEndian.PutUint32(buf[i*4:], p)
	}
	n, err := unix.Write(fd, buf)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("short write: wrote %d of %d bytes", n, len(buf))
	}
	return nil
}
