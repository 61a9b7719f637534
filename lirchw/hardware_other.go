// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package lirchw

import "fmt"

// platformOpen and friends stub out the Linux LIRC ioctl path on every
// other GOOS so the package still builds; every call fails with a clear
// message instead of silently doing nothing. Use package lirctest for
// development off Linux.
var (
	platformOpen        = func(path string) (int, error) { return -1, fmt.Errorf("lirchw: %s: /dev/lirc devices require linux", path) }
	platformClose       = func(fd int) error { return fmt.Errorf("lirchw: not supported on this platform") }
	platformSetSendMode = func(fd int) error { return fmt.Errorf("lirchw: not supported on this platform") }
	platformSetCarrier  = func(fd int, hz uint32) error { return fmt.Errorf("lirchw: not supported on this platform") }
	platformWritePulses = func(fd int, pulses []uint32) error { return fmt.Errorf("lirchw: not supported on this platform") }
)
